package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/money_changer_pos/internal/apperrors"
	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SessionRepositoryTestSuite struct {
	suite.Suite
	now  time.Time
	repo *SessionRepository
	ctx  context.Context
}

func (suite *SessionRepositoryTestSuite) SetupTest() {
	suite.now = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	suite.ctx = context.Background()
	suite.repo = NewSessionRepository(30*time.Minute, WithRepositoryClock(func() time.Time { return suite.now }))
}

func (suite *SessionRepositoryTestSuite) TestSaveAndFind() {
	st := domain.NewSessionState("s-1", suite.now)
	suite.Require().NoError(suite.repo.SaveSession(suite.ctx, st))

	found, err := suite.repo.FindSessionByID(suite.ctx, "s-1")
	suite.Require().NoError(err)
	suite.Equal(st, found)

	found.Step = domain.StepShowingReceipt
	again, _ := suite.repo.FindSessionByID(suite.ctx, "s-1")
	suite.Equal(domain.StepCollectingCustomer, again.Step, "callers get copies")
}

func (suite *SessionRepositoryTestSuite) TestSaveRequiresID() {
	err := suite.repo.SaveSession(suite.ctx, domain.NewSessionState("", suite.now))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SessionRepositoryTestSuite) TestFindUnknown() {
	_, err := suite.repo.FindSessionByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SessionRepositoryTestSuite) TestUpdateAppliesOnSuccess() {
	suite.Require().NoError(suite.repo.SaveSession(suite.ctx, domain.NewSessionState("s-1", suite.now)))

	updated, err := suite.repo.UpdateSession(suite.ctx, "s-1", func(st *domain.SessionState) error {
		st.Step = domain.StepCollectingExchange
		st.LineItems = append(st.LineItems, domain.ExchangeLineItem{})
		return nil
	})
	suite.Require().NoError(err)
	suite.Equal(domain.StepCollectingExchange, updated.Step)

	stored, _ := suite.repo.FindSessionByID(suite.ctx, "s-1")
	suite.Len(stored.LineItems, 1)
}

func (suite *SessionRepositoryTestSuite) TestUpdateDiscardsOnError() {
	suite.Require().NoError(suite.repo.SaveSession(suite.ctx, domain.NewSessionState("s-1", suite.now)))
	boom := errors.New("boom")

	_, err := suite.repo.UpdateSession(suite.ctx, "s-1", func(st *domain.SessionState) error {
		st.Step = domain.StepShowingReceipt
		st.LineItems = append(st.LineItems, domain.ExchangeLineItem{CurrencyCode: "USD"})
		return boom
	})
	suite.ErrorIs(err, boom)

	stored, _ := suite.repo.FindSessionByID(suite.ctx, "s-1")
	suite.Equal(domain.StepCollectingCustomer, stored.Step)
	suite.Empty(stored.LineItems)
}

func (suite *SessionRepositoryTestSuite) TestUpdateUnknown() {
	_, err := suite.repo.UpdateSession(suite.ctx, "missing", func(*domain.SessionState) error { return nil })
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SessionRepositoryTestSuite) TestIdleSessionsExpire() {
	suite.Require().NoError(suite.repo.SaveSession(suite.ctx, domain.NewSessionState("old", suite.now)))
	suite.now = suite.now.Add(20 * time.Minute)
	suite.Require().NoError(suite.repo.SaveSession(suite.ctx, domain.NewSessionState("new", suite.now)))
	suite.Equal(2, suite.repo.Len())

	suite.now = suite.now.Add(15 * time.Minute)

	_, err := suite.repo.FindSessionByID(suite.ctx, "old")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.repo.FindSessionByID(suite.ctx, "new")
	suite.NoError(err)
	suite.Equal(1, suite.repo.Len())
}

func (suite *SessionRepositoryTestSuite) TestDelete() {
	suite.Require().NoError(suite.repo.SaveSession(suite.ctx, domain.NewSessionState("s-1", suite.now)))
	suite.Require().NoError(suite.repo.DeleteSession(suite.ctx, "s-1"))
	suite.Equal(0, suite.repo.Len())
	suite.NoError(suite.repo.DeleteSession(suite.ctx, "s-1"), "deleting twice is fine")
}

func TestSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryTestSuite))
}

func TestUpdateSession_Concurrent(t *testing.T) {
	repo := NewSessionRepository(0)
	ctx := context.Background()
	require.NoError(t, repo.SaveSession(ctx, domain.NewSessionState("s-1", time.Now())))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateSession(ctx, "s-1", func(st *domain.SessionState) error {
				st.LineItems = append(st.LineItems, domain.ExchangeLineItem{})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	st, err := repo.FindSessionByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Len(t, st.LineItems, 50)
}
