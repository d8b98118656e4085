package postgres_test

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/adapters/out/postgres"
	"fieldops/internal/adapters/out/postgres/orderrepo"
	"fieldops/internal/adapters/out/postgres/technicianrepo"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/technician"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// order and technician repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryEntryDTO{},
		&technicianrepo.TechnicianDTO{},
	))
	suite.Require().NoError(db.Exec("CREATE SEQUENCE IF NOT EXISTS order_sequence_numbers").Error)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE technicians").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newPendingOrder(sequenceNumber int64) *order.Order {
	customer, err := order.NewCustomer("Budi Santoso", "+62-812-0000-0001", "Jl. Merdeka 12, Bandung")
	suite.Require().NoError(err)

	dispatcher, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDispatcher)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		sequenceNumber,
		customer,
		"Fiber 100Mbps",
		"BDG-01",
		"STO-DAGO",
		order.PriorityNormal,
		dispatcher,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) newTechnician(employeeID string) *technician.Technician {
	workingHours, err := technician.NewWorkingHours("08:00", "17:00", []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	})
	suite.Require().NoError(err)

	t, err := technician.NewTechnician(
		kernel.NewUUID(),
		kernel.NewUUID(),
		employeeID,
		"Agus Wijaya",
		"BDG-01",
		[]string{"fiber-splicing"},
		[]string{"BDG-01"},
		workingHours,
	)
	suite.Require().NoError(err)
	return t
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newPendingOrder(1)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	t := suite.newTechnician("EMP-001")
	suite.Require().NoError(uow.TechnicianRepository().Add(ctx, t))

	suite.Require().NoError(uow.Commit(ctx))

	// Visible outside the transaction after commit.
	restored, err := orderrepo.NewGormOrderRepository(suite.db).Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(restored.ID()))

	restoredTechnician, err := technicianrepo.NewGormTechnicianRepository(suite.db).Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.True(t.ID().IsEqual(restoredTechnician.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newPendingOrder(1)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	t := suite.newTechnician("EMP-001")
	suite.Require().NoError(uow.TechnicianRepository().Add(ctx, t))

	suite.Require().NoError(uow.Rollback(ctx))

	_, err := orderrepo.NewGormOrderRepository(suite.db).Get(ctx, o.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = technicianrepo.NewGormTechnicianRepository(suite.db).Get(ctx, t.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	suite.Error(uow.Commit(context.Background()))
	suite.Error(uow.Rollback(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConditionalWrite_SecondTransactionLosesRace() {
	ctx := context.Background()

	o := suite.newPendingOrder(1)
	repo := orderrepo.NewGormOrderRepository(suite.db)
	suite.Require().NoError(repo.Add(ctx, o))

	dispatcher, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDispatcher)
	suite.Require().NoError(err)

	assign := func(target *order.Order) {
		suite.Require().NoError(target.Assign(
			kernel.NewUUID(),
			"Agus Wijaya",
			"BDG-01",
			dispatcher,
			time.Now().UTC().Truncate(time.Microsecond),
			"manual assignment",
		))
	}

	first, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)

	winner := suite.factory.Create()
	suite.Require().NoError(winner.Begin(ctx))
	assign(first)
	suite.Require().NoError(winner.OrderRepository().UpdateWhereStatus(ctx, first, order.StatusPending))
	suite.Require().NoError(winner.Commit(ctx))

	loser := suite.factory.Create()
	suite.Require().NoError(loser.Begin(ctx))
	assign(second)
	err = loser.OrderRepository().UpdateWhereStatus(ctx, second, order.StatusPending)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrencyConflict)
	suite.Require().NoError(loser.Rollback(ctx))

	restored, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(first.Assignment().TechnicianID().IsEqual(restored.Assignment().TechnicianID()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
