//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"linenhire/internal/usecase/commands"
	"linenhire/tests/common/builder"
	commandsmock "linenhire/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type queryMocks struct {
	queryRepo      *commandsmock.MockQueryRepository
	mailConfigRepo *commandsmock.MockMailConfigRepository
	mailer         *commandsmock.MockMailer
}

func newQueryCommands(t *testing.T, mailEnabled bool) (commands.QueryCommands, queryMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := queryMocks{
		queryRepo:      commandsmock.NewMockQueryRepository(ctrl),
		mailConfigRepo: commandsmock.NewMockMailConfigRepository(ctrl),
		mailer:         commandsmock.NewMockMailer(ctrl),
	}
	return commands.NewQueryCommands(m.queryRepo, m.mailConfigRepo, m.mailer, mailEnabled), m
}

func TestQueryCommands_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success: stores the query without touching mail when disabled", func(t *testing.T) {
		req := builder.NewQueryBuilder().BuildDTO()
		queryID := uuid.New()

		cmds, m := newQueryCommands(t, false)
		m.queryRepo.EXPECT().Create(ctx, gomock.Any()).Return(queryID, nil)

		id, err := cmds.Submit(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, queryID, id)
	})

	t.Run("success: renders both notification templates", func(t *testing.T) {
		qb := builder.NewQueryBuilder()
		qb.Message = "First line\nSecond line"
		req := qb.BuildDTO()
		queryID := uuid.New()

		settings := &commands.MailSettings{
			Host:                 "smtp.example.com",
			AdminEmail:           "admin@example.com",
			QueryAdminSubject:    "Query from {{name}}",
			QueryAdminBody:       "<p>{{message}}</p>",
			QueryCustomerSubject: "We got your message, {{name}}",
			QueryCustomerBody:    "<p>Thanks {{name}}</p>",
		}

		cmds, m := newQueryCommands(t, true)
		m.queryRepo.EXPECT().Create(ctx, gomock.Any()).Return(queryID, nil)
		m.mailConfigRepo.EXPECT().Get(ctx).Return(settings, nil)
		m.mailer.EXPECT().Send(ctx, *settings, commands.MailMessage{
			To:      "admin@example.com",
			Subject: "Query from John Doe",
			HTML:    "<p>First line<br>Second line</p>",
		}).Return(nil)
		m.mailer.EXPECT().Send(ctx, *settings, commands.MailMessage{
			To:      "john@example.com",
			Subject: "We got your message, John Doe",
			HTML:    "<p>Thanks John Doe</p>",
		}).Return(nil)

		id, err := cmds.Submit(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, queryID, id)
	})

	t.Run("success: unconfigured mail skips notifications", func(t *testing.T) {
		req := builder.NewQueryBuilder().BuildDTO()
		queryID := uuid.New()

		cmds, m := newQueryCommands(t, true)
		m.queryRepo.EXPECT().Create(ctx, gomock.Any()).Return(queryID, nil)
		m.mailConfigRepo.EXPECT().Get(ctx).Return(nil, nil)

		_, err := cmds.Submit(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("error: blank required fields", func(t *testing.T) {
		req := builder.NewQueryBuilder().BuildDTO()
		req.Message = "   "

		cmds, _ := newQueryCommands(t, false)

		_, err := cmds.Submit(ctx, req)

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("error: insert failure", func(t *testing.T) {
		req := builder.NewQueryBuilder().BuildDTO()

		cmds, m := newQueryCommands(t, false)
		m.queryRepo.EXPECT().Create(ctx, gomock.Any()).Return(uuid.Nil, errors.New("connection reset"))

		_, err := cmds.Submit(ctx, req)

		assert.ErrorIs(t, err, commands.ErrDatabaseOperation)
	})
}

func TestQueryCommands_MarkRead(t *testing.T) {
	ctx := context.Background()
	queryID := uuid.New()

	t.Run("success", func(t *testing.T) {
		cmds, m := newQueryCommands(t, false)
		m.queryRepo.EXPECT().MarkRead(ctx, queryID).Return(nil)

		assert.NoError(t, cmds.MarkRead(ctx, queryID))
	})

	t.Run("error: unknown query", func(t *testing.T) {
		cmds, m := newQueryCommands(t, false)
		m.queryRepo.EXPECT().MarkRead(ctx, queryID).Return(notFoundErr())

		assert.ErrorIs(t, cmds.MarkRead(ctx, queryID), commands.ErrQueryNotFound)
	})
}

func TestQueryCommands_Delete(t *testing.T) {
	ctx := context.Background()
	queryID := uuid.New()

	t.Run("success", func(t *testing.T) {
		cmds, m := newQueryCommands(t, false)
		m.queryRepo.EXPECT().Delete(ctx, queryID).Return(nil)

		assert.NoError(t, cmds.Delete(ctx, queryID))
	})

	t.Run("error: unknown query", func(t *testing.T) {
		cmds, m := newQueryCommands(t, false)
		m.queryRepo.EXPECT().Delete(ctx, queryID).Return(notFoundErr())

		assert.ErrorIs(t, cmds.Delete(ctx, queryID), commands.ErrQueryNotFound)
	})
}
