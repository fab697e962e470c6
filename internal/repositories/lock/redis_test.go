package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	uuidMocks "github.com/KirkDiggler/giveaway-bot/internal/common/uuid/mocks"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	client   *redis.Client
	ctrl     *gomock.Controller
	mockUUID *uuidMocks.MockUUID
	repo     Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.ctrl = gomock.NewController(s.T())
	s.mockUUID = uuidMocks.NewMockUUID(s.ctrl)

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		UUID:        s.mockUUID,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestAcquireAndRelease() {
	s.mockUUID.EXPECT().NewUUID().Return("token-1")

	lease, err := s.repo.Acquire(context.Background(), &AcquireInput{Name: "sweep", TTL: 50 * time.Second})
	s.Require().NoError(err)
	s.Equal("sweep", lease.Name)
	s.Equal("token-1", lease.Token)

	value, err := s.mr.Get("lock:sweep")
	s.Require().NoError(err)
	s.Equal("token-1", value)
	s.Equal(50*time.Second, s.mr.TTL("lock:sweep"))

	s.Require().NoError(s.repo.Release(context.Background(), &ReleaseInput{Lease: lease}))
	s.False(s.mr.Exists("lock:sweep"))
}

func (s *RedisRepositoryTestSuite) TestAcquireWhileHeld() {
	s.mockUUID.EXPECT().NewUUID().Return("token-1")
	s.mockUUID.EXPECT().NewUUID().Return("token-2")

	_, err := s.repo.Acquire(context.Background(), &AcquireInput{Name: "sweep", TTL: time.Minute})
	s.Require().NoError(err)

	_, err = s.repo.Acquire(context.Background(), &AcquireInput{Name: "sweep", TTL: time.Minute})
	s.ErrorIs(err, ErrLockHeld)
}

func (s *RedisRepositoryTestSuite) TestAcquireAfterExpiry() {
	s.mockUUID.EXPECT().NewUUID().Return("token-1")
	s.mockUUID.EXPECT().NewUUID().Return("token-2")

	first, err := s.repo.Acquire(context.Background(), &AcquireInput{Name: "sweep", TTL: time.Minute})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	second, err := s.repo.Acquire(context.Background(), &AcquireInput{Name: "sweep", TTL: time.Minute})
	s.Require().NoError(err)
	s.Equal("token-2", second.Token)

	// the expired owner must not release the new owner's lease
	err = s.repo.Release(context.Background(), &ReleaseInput{Lease: first})
	s.ErrorIs(err, ErrLockLost)
	s.True(s.mr.Exists("lock:sweep"))
}

func (s *RedisRepositoryTestSuite) TestAcquireValidation() {
	_, err := s.repo.Acquire(context.Background(), &AcquireInput{Name: "sweep"})
	s.Error(err)

	_, err = s.repo.Acquire(context.Background(), &AcquireInput{TTL: time.Minute})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestRedisDownSurfacesOnAcquire() {
	s.mr.Close()
	s.mockUUID.EXPECT().NewUUID().Return("token-1")

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		UUID:        s.mockUUID,
	})
	s.Require().NoError(err)

	_, err = repo.Acquire(context.Background(), &AcquireInput{Name: "sweep", TTL: time.Minute})
	s.Error(err)
	s.NotErrorIs(err, ErrLockHeld)
}
