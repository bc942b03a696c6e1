package deps

import (
	"context"
	"storefront/internal/config"
	"storefront/internal/core/domain/category"
	"storefront/internal/core/domain/coupon"
	dl "storefront/internal/core/domain/logging"
	"storefront/internal/core/domain/user"
	"storefront/internal/db"
	dbcategory "storefront/internal/db/category"
	dbcoupon "storefront/internal/db/coupon"
	dbuser "storefront/internal/db/user"
	"storefront/internal/implementations/email"
	"storefront/internal/implementations/logging"
	passwordhasher "storefront/internal/implementations/password_hasher"
	resettoken "storefront/internal/implementations/reset_token"
	"storefront/internal/implementations/session"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB *pgxpool.Pool

	Now func() time.Time

	UserRepository     user.UserRepository
	CategoryRepository category.Repository
	CouponRepository   coupon.Repository

	PasswordHasher      user.PasswordHasher
	ResetTokenGenerator user.ResetTokenGenerator
	SessionTokenIssuer  user.SessionTokenIssuer
	Notifier            user.Notifier
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	deps.applyMigrations()
	closePgxPool := deps.initPgxPool()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.CategoryRepository = dbcategory.NewPgxRepository(deps.DB)
	deps.CouponRepository = dbcoupon.NewPgxRepository(deps.DB)

	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.ResetTokenGenerator = resettoken.NewGenerator()
	deps.SessionTokenIssuer = session.NewJWT(
		deps.Config.Secret,
		deps.Config.SessionTokenValidDuration,
		deps.Now,
	)
	deps.Notifier = email.NewNotifier(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailWelcomeTemplate,
		deps.Config.AwsEmailPasswordResetTemplate,
	)

	return deps, func() {
		closeFuncs := []func(){
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) applyMigrations() {
	err := db.ApplyMigrations(deps.Config.MigrationsPath, deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not apply migrations.", dl.Entry("err", err))
		panic(err)
	}
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}
