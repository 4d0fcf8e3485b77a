package agentrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/agentrepo"
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AgentDirectoryIntegrationTestSuite verifies the atomic claim, release, and
// self-service availability updates against a real PostgreSQL instance.
type AgentDirectoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	directory *agentrepo.GormAgentDirectory
}

func (suite *AgentDirectoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&agentrepo.AgentDTO{}))
}

func (suite *AgentDirectoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE agents").Error)
	suite.directory = agentrepo.NewGormAgentDirectory(suite.db)
}

func (suite *AgentDirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AgentDirectoryIntegrationTestSuite) seedAgent(name string, availability agent.Availability, active bool) kernel.UUID {
	id := kernel.NewUUID()
	dto := agentrepo.AgentDTO{
		ID:           id.Bytes(),
		Name:         name,
		Availability: availability.String(),
		Active:       active,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *AgentDirectoryIntegrationTestSuite) TestClaimAvailable_OneAvailableAgent_MarksBusy() {
	ctx := context.Background()
	id := suite.seedAgent("Jane Smith", agent.Available, true)

	claimed, err := suite.directory.ClaimAvailable(ctx)
	suite.Require().NoError(err)
	suite.True(claimed.ID().IsEqual(id))
	suite.Equal(agent.Busy, claimed.Availability())

	loaded, err := suite.directory.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(agent.Busy, loaded.Availability())
}

func (suite *AgentDirectoryIntegrationTestSuite) TestClaimAvailable_NoAvailableAgents_ReturnsNotFound() {
	ctx := context.Background()
	suite.seedAgent("Busy Bob", agent.Busy, true)
	suite.seedAgent("Offline Olga", agent.Offline, true)
	suite.seedAgent("Inactive Ivan", agent.Available, false)

	_, err := suite.directory.ClaimAvailable(ctx)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AgentDirectoryIntegrationTestSuite) TestClaimAvailable_ConcurrentClaims_NeverShareAnAgent() {
	ctx := context.Background()
	suite.seedAgent("Agent One", agent.Available, true)
	suite.seedAgent("Agent Two", agent.Available, true)

	const claimers = 5
	results := make(chan kernel.UUID, claimers)
	var wg sync.WaitGroup

	for range claimers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := suite.directory.ClaimAvailable(ctx)
			if err == nil {
				results <- claimed.ID()
			}
		}()
	}
	wg.Wait()
	close(results)

	claimedIDs := make(map[string]bool)
	for id := range results {
		suite.False(claimedIDs[id.String()], "agent %s claimed twice", id)
		claimedIDs[id.String()] = true
	}
	suite.Len(claimedIDs, 2)
}

func (suite *AgentDirectoryIntegrationTestSuite) TestRelease_BusyAgent_BecomesAvailable() {
	ctx := context.Background()
	id := suite.seedAgent("Jane Smith", agent.Busy, true)

	suite.Require().NoError(suite.directory.Release(ctx, id))

	loaded, err := suite.directory.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(agent.Available, loaded.Availability())
}

func (suite *AgentDirectoryIntegrationTestSuite) TestRelease_NotBusyAgent_ReturnsConflict() {
	ctx := context.Background()
	id := suite.seedAgent("Jane Smith", agent.Available, true)

	err := suite.directory.Release(ctx, id)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *AgentDirectoryIntegrationTestSuite) TestSetAvailability_BusyAgent_Rejected() {
	ctx := context.Background()
	id := suite.seedAgent("Jane Smith", agent.Busy, true)

	err := suite.directory.SetAvailability(ctx, id, agent.Offline)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *AgentDirectoryIntegrationTestSuite) TestSetAvailability_AvailableAgent_GoesOffline() {
	ctx := context.Background()
	id := suite.seedAgent("Jane Smith", agent.Available, true)

	suite.Require().NoError(suite.directory.SetAvailability(ctx, id, agent.Offline))

	loaded, err := suite.directory.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(agent.Offline, loaded.Availability())
}

func TestAgentDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AgentDirectoryIntegrationTestSuite))
}
