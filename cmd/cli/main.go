package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

// Swappable for tests.
var bcryptGenerate = bcrypt.GenerateFromPassword

func main() {
	rootCmd := &cobra.Command{
		Use:   "fintcs-cli",
		Short: "Fintcs CLI tool",
		Long:  `A command line interface for interacting with the Fintcs cooperative society API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Fintcs API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated endpoints")

	rootCmd.AddCommand(societyCmd())
	rootCmd.AddCommand(memberCmd())
	rootCmd.AddCommand(demandCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func societyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "society",
		Short: "Society operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List societies",
		Run: func(cmd *cobra.Command, args []string) {
			apiGet("/api/v1/societies/")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get [id]",
		Short: "Get a society by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			apiGet("/api/v1/societies/" + args[0])
		},
	})

	return cmd
}

func memberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Member operations",
	}

	var societyID string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List members of a society",
		Run: func(cmd *cobra.Command, args []string) {
			apiGet("/api/v1/members/?society_id=" + societyID)
		},
	}
	listCmd.Flags().StringVar(&societyID, "society-id", "", "Society ID")
	listCmd.MarkFlagRequired("society-id")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get [id]",
		Short: "Get a member by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			apiGet("/api/v1/members/" + args[0])
		},
	})

	return cmd
}

func demandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demand",
		Short: "Monthly demand statement operations",
	}

	var (
		societyID string
		month     int
		year      int
	)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the demand statement for a society and period",
		Run: func(cmd *cobra.Command, args []string) {
			apiPost("/api/v1/demand/generate", map[string]any{
				"society_id": societyID,
				"month":      month,
				"year":       year,
			})
		},
	}
	generateCmd.Flags().StringVar(&societyID, "society-id", "", "Society ID")
	generateCmd.Flags().IntVar(&month, "month", int(time.Now().Month()), "Month (1-12)")
	generateCmd.Flags().IntVar(&year, "year", time.Now().Year(), "Year")
	generateCmd.MarkFlagRequired("society-id")
	cmd.AddCommand(generateCmd)

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch a previously generated demand statement",
		Run: func(cmd *cobra.Command, args []string) {
			apiGet("/api/v1/demand/?society_id=" + societyID +
				"&month=" + strconv.Itoa(month) + "&year=" + strconv.Itoa(year))
		},
	}
	getCmd.Flags().StringVar(&societyID, "society-id", "", "Society ID")
	getCmd.Flags().IntVar(&month, "month", int(time.Now().Month()), "Month (1-12)")
	getCmd.Flags().IntVar(&year, "year", time.Now().Year(), "Year")
	getCmd.MarkFlagRequired("society-id")
	cmd.AddCommand(getCmd)

	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Hash a password for seeding users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func apiGet(path string) {
	doRequest(http.MethodGet, path, nil)
}

func apiPost(path string, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}
	doRequest(http.MethodPost, path, payload)
}

func doRequest(method, path string, payload []byte) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, truncate(string(body), 2000))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
