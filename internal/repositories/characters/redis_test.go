package characters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
	"github.com/KirkDiggler/charsheet/internal/testutils"
	"github.com/KirkDiggler/charsheet/internal/uuid"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	now        time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:        s.mockClient,
		UUIDGenerator: &uuid.SequenceGenerator{Prefix: "gen"},
		Now:           func() time.Time { return s.now },
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) encoded(doc *character.Document, createdAt, updatedAt time.Time) string {
	data, err := toCharacterData(doc, createdAt, updatedAt)
	s.Require().NoError(err)
	jsonData, err := json.Marshal(data)
	s.Require().NoError(err)
	return string(jsonData)
}

func (s *RedisRepoTestSuite) TestCreate() {
	doc := testutils.CreateTestDocument("test-id", "owner-id", "Aria")

	s.mock.ExpectSetNX("character:test-id", s.encoded(doc, s.now, s.now), 0).SetVal(true)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSAdd("owner:owner-id:characters", "test-id").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Create(context.Background(), doc))
}

func (s *RedisRepoTestSuite) TestCreateIndexErrorRemovesDocument() {
	doc := testutils.CreateTestDocument("test-id", "owner-id", "Aria")

	s.mock.ExpectSetNX("character:test-id", s.encoded(doc, s.now, s.now), 0).SetVal(true)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSAdd("owner:owner-id:characters", "test-id").SetVal(1)
	s.mock.ExpectTxPipelineExec().SetErr(errors.New("connection reset"))
	s.mock.ExpectDel("character:test-id").SetVal(1)

	err := s.repo.Create(context.Background(), doc)
	s.Error(err)
	s.Contains(err.Error(), "failed to index character")
}

func (s *RedisRepoTestSuite) TestCreateAlreadyExists() {
	doc := testutils.CreateTestDocument("test-id", "owner-id", "Aria")

	s.mock.ExpectSetNX("character:test-id", s.encoded(doc, s.now, s.now), 0).SetVal(false)

	err := s.repo.Create(context.Background(), doc)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreateRejectsMissingOwner() {
	doc := testutils.CreateTestDocument("test-id", "", "Aria")

	err := s.repo.Create(context.Background(), doc)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestCreateClientError() {
	doc := testutils.CreateTestDocument("test-id", "owner-id", "Aria")

	s.mock.ExpectSetNX("character:test-id", s.encoded(doc, s.now, s.now), 0).SetErr(errors.New("connection refused"))

	err := s.repo.Create(context.Background(), doc)
	s.Error(err)
	s.Contains(err.Error(), "failed to create character")
}

func (s *RedisRepoTestSuite) TestGet() {
	doc := testutils.CreateTestDocument("test-id", "owner-id", "Aria")
	created := s.now.Add(-time.Hour)

	s.mock.ExpectGet("character:test-id").SetVal(s.encoded(doc, created, s.now))

	record, err := s.repo.Get(context.Background(), "test-id")
	s.Require().NoError(err)
	s.Equal(doc, record.Document)
	s.Equal(character.DocumentVersion, record.Version)
	s.False(record.Repaired)
	s.True(created.Equal(record.CreatedAt))
}

func (s *RedisRepoTestSuite) TestGetNotFound() {
	s.mock.ExpectGet("character:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetLegacyBareDocument() {
	s.mock.ExpectGet("character:old").SetVal(`{"name":"Old Timer","ownerId":"owner-id","abilities":{"strength":"17"}}`)

	record, err := s.repo.Get(context.Background(), "old")
	s.Require().NoError(err)
	s.Equal(1, record.Version)
	s.True(record.Repaired)
	s.Equal("old", record.Document.ID)
	s.Equal("Old Timer", record.Document.Name)
	s.Equal(17, record.Document.Abilities.Strength)
}

func (s *RedisRepoTestSuite) TestListByOwner() {
	first := testutils.CreateTestDocument("a", "owner-id", "First")
	second := testutils.CreateTestDocument("b", "owner-id", "Second")

	s.mock.ExpectSMembers("owner:owner-id:characters").SetVal([]string{"b", "gone", "a"})
	s.mock.ExpectGet("character:a").SetVal(s.encoded(first, s.now, s.now))
	s.mock.ExpectGet("character:b").SetVal(s.encoded(second, s.now, s.now))
	s.mock.ExpectGet("character:gone").RedisNil()

	records, err := s.repo.ListByOwner(context.Background(), "owner-id")
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("First", records[0].Document.Name)
	s.Equal("Second", records[1].Document.Name)
}

func (s *RedisRepoTestSuite) TestUpdateKeepsCreatedAt() {
	doc := testutils.CreateTestDocument("test-id", "owner-id", "Aria")
	created := s.now.Add(-24 * time.Hour)

	s.mock.ExpectGet("character:test-id").SetVal(s.encoded(doc, created, created))

	doc.Name = "Aria the Bold"
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("character:test-id", s.encoded(doc, created, s.now), 0).SetVal("OK")
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Update(context.Background(), doc))
}

func (s *RedisRepoTestSuite) TestUpdateMovesOwnerIndex() {
	doc := testutils.CreateTestDocument("test-id", "old-owner", "Aria")

	s.mock.ExpectGet("character:test-id").SetVal(s.encoded(doc, s.now, s.now))

	doc.OwnerID = "new-owner"
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("character:test-id", s.encoded(doc, s.now, s.now), 0).SetVal("OK")
	s.mock.ExpectSRem("owner:old-owner:characters", "test-id").SetVal(1)
	s.mock.ExpectSAdd("owner:new-owner:characters", "test-id").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Update(context.Background(), doc))
}

func (s *RedisRepoTestSuite) TestUpdateIndexErrorFailsWholeWrite() {
	doc := testutils.CreateTestDocument("test-id", "old-owner", "Aria")

	s.mock.ExpectGet("character:test-id").SetVal(s.encoded(doc, s.now, s.now))

	doc.OwnerID = "new-owner"
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("character:test-id", s.encoded(doc, s.now, s.now), 0).SetVal("OK")
	s.mock.ExpectSRem("owner:old-owner:characters", "test-id").SetVal(1)
	s.mock.ExpectSAdd("owner:new-owner:characters", "test-id").SetVal(1)
	s.mock.ExpectTxPipelineExec().SetErr(errors.New("connection reset"))

	err := s.repo.Update(context.Background(), doc)
	s.Error(err)
	s.Contains(err.Error(), "failed to update character")
}

func (s *RedisRepoTestSuite) TestUpdateNotFound() {
	doc := testutils.CreateTestDocument("test-id", "owner-id", "Aria")

	s.mock.ExpectGet("character:test-id").RedisNil()

	err := s.repo.Update(context.Background(), doc)
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	doc := testutils.CreateTestDocument("test-id", "owner-id", "Aria")

	s.mock.ExpectGet("character:test-id").SetVal(s.encoded(doc, s.now, s.now))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("character:test-id").SetVal(1)
	s.mock.ExpectSRem("owner:owner-id:characters", "test-id").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Delete(context.Background(), "test-id"))
}

func (s *RedisRepoTestSuite) TestDeleteIndexError() {
	doc := testutils.CreateTestDocument("test-id", "owner-id", "Aria")

	s.mock.ExpectGet("character:test-id").SetVal(s.encoded(doc, s.now, s.now))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("character:test-id").SetVal(1)
	s.mock.ExpectSRem("owner:owner-id:characters", "test-id").SetVal(1)
	s.mock.ExpectTxPipelineExec().SetErr(errors.New("connection reset"))

	err := s.repo.Delete(context.Background(), "test-id")
	s.Error(err)
	s.Contains(err.Error(), "failed to delete character")
}
