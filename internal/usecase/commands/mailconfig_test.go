//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	reqdto "linenhire/internal/handler/dto/request"
	"linenhire/internal/usecase/commands"
	commandsmock "linenhire/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func mailConfigRequest(pw string) reqdto.UpdateMailConfigRequest {
	return reqdto.UpdateMailConfigRequest{
		Host:       "smtp.example.com",
		Port:       587,
		Username:   "mailer",
		Password:   pw,
		FromEmail:  "noreply@example.com",
		AdminEmail: "admin@example.com",
	}
}

func TestMailConfigCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success: a provided password is stored as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockMailConfigRepository(ctrl)
		cmds := commands.NewMailConfigCommands(repo)

		repo.EXPECT().Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, settings commands.MailSettings) error {
				assert.Equal(t, "new-secret", settings.Password)
				assert.Equal(t, "smtp.example.com", settings.Host)
				return nil
			})

		assert.NoError(t, cmds.Update(ctx, mailConfigRequest("new-secret")))
	})

	t.Run("success: an empty password keeps the stored one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockMailConfigRepository(ctrl)
		cmds := commands.NewMailConfigCommands(repo)

		repo.EXPECT().Get(ctx).Return(&commands.MailSettings{Password: "stored-secret"}, nil)
		repo.EXPECT().Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, settings commands.MailSettings) error {
				assert.Equal(t, "stored-secret", settings.Password)
				return nil
			})

		assert.NoError(t, cmds.Update(ctx, mailConfigRequest("")))
	})

	t.Run("success: empty password on first configuration stays empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockMailConfigRepository(ctrl)
		cmds := commands.NewMailConfigCommands(repo)

		repo.EXPECT().Get(ctx).Return(nil, nil)
		repo.EXPECT().Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, settings commands.MailSettings) error {
				assert.Empty(t, settings.Password)
				return nil
			})

		assert.NoError(t, cmds.Update(ctx, mailConfigRequest("")))
	})

	t.Run("error: write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockMailConfigRepository(ctrl)
		cmds := commands.NewMailConfigCommands(repo)

		repo.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("connection reset"))

		assert.ErrorIs(t, cmds.Update(ctx, mailConfigRequest("pw")), commands.ErrDatabaseOperation)
	})
}
