package integration

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	adaptershttp "github.com/rajesh2024-krita/fintcs/internal/adapter/http"
	"github.com/rajesh2024-krita/fintcs/internal/adapter/http/handler"
	"github.com/rajesh2024-krita/fintcs/internal/adapter/repository/postgres"
	redisrepo "github.com/rajesh2024-krita/fintcs/internal/adapter/repository/redis"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/auth"
	infraredis "github.com/rajesh2024-krita/fintcs/internal/infrastructure/redis"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
	"github.com/rajesh2024-krita/fintcs/tests/testutil"
)

// newTestRouter wires the full API against the test database with
// authentication disabled.
func newTestRouter(t *testing.T, ctx context.Context, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	pool := testDB.Pool

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	txManager := postgres.NewTxManager(pool)
	societyRepo := postgres.NewSocietyRepository(pool)
	memberRepo := postgres.NewMemberRepository(pool)
	loanRepo := postgres.NewLoanRepository(pool)
	voucherRepo := postgres.NewVoucherRepository(pool)
	demandRepo := postgres.NewDemandRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	cache := redisrepo.NewCache(redisClient)
	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier(nil)

	societyUC := usecase.NewSocietyUseCase(societyRepo, idGen)
	memberUC := usecase.NewMemberUseCase(memberRepo, societyRepo, idGen, retrier, cache, nil)
	loanUC := usecase.NewLoanUseCase(loanRepo, memberRepo, societyRepo, idGen, retrier, nil)
	voucherUC := usecase.NewVoucherUseCase(txManager, voucherRepo, societyRepo, idGen, retrier, nil)
	demandUC := usecase.NewDemandUseCase(txManager, demandRepo, memberRepo, loanRepo, societyRepo, idGen, nil, nil)
	userUC := usecase.NewUserUseCase(userRepo, idGen, nil)

	jwtManager := auth.NewJWTManager("integration-test-secret", time.Hour)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		SocietyHandler:   handler.NewSocietyHandler(societyUC),
		MemberHandler:    handler.NewMemberHandler(memberUC),
		LoanHandler:      handler.NewLoanHandler(loanUC),
		VoucherHandler:   handler.NewVoucherHandler(voucherUC),
		DemandHandler:    handler.NewDemandHandler(demandUC),
		UserHandler:      handler.NewUserHandler(userUC),
		AuthHandler:      handler.NewAuthHandler(userUC, jwtManager),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		JWTManager:       jwtManager,
		AuthEnabled:      false,
	})
}
