package deps

import (
	"adikart/internal/config"
	dl "adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/payment"
	"adikart/internal/core/domain/product"
	duow "adikart/internal/core/domain/unit_of_work"
	"adikart/internal/core/domain/user"
	dbproduct "adikart/internal/db/product"
	uow "adikart/internal/db/unit_of_work"
	dbuser "adikart/internal/db/user"
	"adikart/internal/implementations/email"
	"adikart/internal/implementations/logging"
	passwordhasher "adikart/internal/implementations/password_hasher"
	"adikart/internal/implementations/razorpay"
	resettoken "adikart/internal/implementations/reset_token"
	"adikart/internal/implementations/session"
	"adikart/internal/rabbitmq"
	paidorder "adikart/internal/rabbitmq/publishers/paid_order"
	redissession "adikart/internal/redis/session"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v4/pgxpool"
)

const razorpayRequestTimeout = 10 * time.Second

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UnitOfWork        duow.UnitOfWork
	UserRepository    user.UserRepository
	SessionRepository user.SessionRepository
	ProductRepository product.Repository

	PasswordHasher        user.PasswordHasher
	ResetTokenGenerator   user.ResetTokenGenerator
	ResetTokenHasher      user.ResetTokenHasher
	ResetTokenSender      user.ResetTokenSender
	SessionTokenGenerator user.SessionTokenGenerator

	PaymentGateway     payment.Gateway
	SignatureVerifier  payment.SignatureVerifier
	ReceiptGenerator   payment.ReceiptGenerator
	PaidOrderPublisher payment.PaidOrderPublisher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	deps.applyMigrations()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.ProductRepository = dbproduct.NewPgxRepository(deps.DB)
	deps.SessionRepository = redissession.NewRedisSessionRepository(
		deps.Redis,
		deps.UserRepository,
		time.Duration(deps.Config.SessionTTLHours)*time.Hour,
	)

	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.ResetTokenGenerator = resettoken.NewGenerator()
	deps.ResetTokenHasher = resettoken.NewSHA256Hasher()
	deps.ResetTokenSender = email.NewResetTokenSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailPasswordResetTemplate,
		deps.Config.AwsEmailPasswordResetBaseUrl,
	)
	deps.SessionTokenGenerator = session.NewUUID()

	deps.PaymentGateway = razorpay.NewGateway(
		deps.Logger,
		deps.Config.RazorpayKeyID,
		deps.Config.RazorpayKeySecret,
		razorpayRequestTimeout,
	)
	deps.SignatureVerifier = razorpay.NewSignatureVerifier(deps.Config.RazorpayKeySecret)
	deps.ReceiptGenerator = razorpay.NewReceiptGenerator()

	closePaidOrderPublisher := deps.initRabbitmqPaidOrderPublisher()

	return deps, func() {
		closeFuncs := []func(){
			closePaidOrderPublisher,
			closeRabbitmqConn,
			closeRedisClient,
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
	m, err := migrate.New("file://"+deps.Config.MigrationsPath, deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB for applying migrations.", dl.Entry("err", err))
		panic(err)
	}
	err = m.Up()
	if !errors.Is(err, migrate.ErrNoChange) && err != nil {
		deps.Logger.Error(context.Background(), "Could not apply DB migrations.", dl.Entry("err", err))
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

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqPaidOrderPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.RabbitmqPaidOrderExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}
	_, err = rabbitmqChannel.QueueDeclare(deps.Config.RabbitmqPaidOrderQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.QueueBind(
		deps.Config.RabbitmqPaidOrderQueue,
		deps.Config.RabbitmqPaidOrderQueue,
		deps.Config.RabbitmqPaidOrderExchange,
		false,
		nil,
	); err != nil {
		deps.Logger.Error(context.Background(), "Could not bind queue to RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	deps.PaidOrderPublisher = paidorder.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqPaidOrderExchange,
		deps.Config.RabbitmqPaidOrderQueue,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down paid order publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Paid order publisher shut down.")
	}
}
