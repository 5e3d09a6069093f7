package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/noosflare/internal/bootstrap"
	"github.com/noah-isme/noosflare/internal/models"
	"github.com/noah-isme/noosflare/pkg/config"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	app := bootstrap.New(context.Background(), &config.Config{
		Env:      config.EnvDevelopment,
		Reset:    config.ResetConfig{Code: "123456", ResendSeconds: 60, TickInterval: time.Hour},
		Upload:   config.UploadConfig{Workers: 1, BufferSize: 4},
		Subjects: config.SubjectsConfig{TopCount: 5, RecentLimit: 3, InitialFavorites: []string{"physics"}},
	}, nil)
	t.Cleanup(app.Shutdown)
	return app
}

func runScript(t *testing.T, app *bootstrap.App, readPassword PasswordReader, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, New(app, readPassword, nil).Run(context.Background(), in, &out))
	return out.String()
}

func TestConsoleBrowseMaterials(t *testing.T) {
	app := newTestApp(t)
	out := runScript(t, app, nil,
		"login", "a@b.com", "secret",
		"open math",
		"search интеграл",
		"search такого нет",
		"exit",
	)

	assert.Contains(t, out, "Популярные предметы")
	assert.Contains(t, out, "Избранные предметы")
	assert.Contains(t, out, "Математический анализ: 2 материала")
	assert.Contains(t, out, "Конспект по интегралам")
	assert.Contains(t, out, emptyMaterials)
	assert.Contains(t, out, "До встречи!")

	state := app.Session.State()
	assert.Equal(t, models.ScreenMaterials, state.Screen)
	assert.Equal(t, "math", state.SelectedSubjectID)
}

func TestConsoleReportsErrors(t *testing.T) {
	app := newTestApp(t)
	out := runScript(t, app, nil,
		"login", "ab.com", "secret",
		"go profile",
		"dance",
	)

	assert.Contains(t, out, "Ошибка: Введите корректный email")
	assert.Contains(t, out, "Неизвестная команда")
	assert.Equal(t, models.ScreenLogin, app.Session.State().Screen)
}

func TestConsoleUsesPasswordReader(t *testing.T) {
	app := newTestApp(t)
	var prompts []string
	reader := func(prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return "secret", nil
	}

	runScript(t, app, reader, "login", "a@b.com", "state")
	assert.Equal(t, []string{"Пароль: "}, prompts)
	assert.True(t, app.Session.State().Authenticated())
}

func TestConsolePasswordResetFlow(t *testing.T) {
	app := newTestApp(t)
	out := runScript(t, app, nil,
		"forgot",
		"email", "a@b.com",
		"resend",
		"code", "123456",
		"password", "secret1", "secret1",
		"back",
	)

	assert.Contains(t, out, "[ok] Код восстановления отправлен на a@b.com")
	assert.Contains(t, out, "Ошибка: Отправить код повторно можно через 60 сек")
	assert.Contains(t, out, "[ok] Код подтвержден")
	assert.Contains(t, out, "[ok] Пароль успешно изменен")
	assert.Equal(t, models.ScreenLogin, app.Session.State().Screen)
}

func TestConsoleUploadShowsInProfile(t *testing.T) {
	app := newTestApp(t)
	runScript(t, app, nil,
		"login", "a@b.com", "secret",
		"go upload",
		"submit", "notes", "math", "Ряды", "Лекции", "Ряды Тейлора", "", "taylor.pdf", "2097152",
	)
	app.WaitUploads()

	out := runScript(t, app, nil, "go profile")
	assert.Contains(t, out, "Ряды Тейлора")
	assert.Contains(t, out, "На модерации")
	assert.Contains(t, out, "3 материала")
}

func TestSplitCommand(t *testing.T) {
	cmd, arg := splitCommand("  search  ряды Тейлора ")
	assert.Equal(t, "search", cmd)
	assert.Equal(t, "ряды Тейлора", arg)

	cmd, arg = splitCommand("list")
	assert.Equal(t, "list", cmd)
	assert.Empty(t, arg)
}
