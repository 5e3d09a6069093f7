// Package console implements the interactive shell over a session.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/noosflare/internal/bootstrap"
	"github.com/noah-isme/noosflare/internal/models"
	"github.com/noah-isme/noosflare/internal/service"
	appErrors "github.com/noah-isme/noosflare/pkg/errors"
)

// Console reads commands line by line and drives the session.
type Console struct {
	app          *bootstrap.App
	readPassword PasswordReader
	logger       *zap.Logger

	sc  *bufio.Scanner
	out io.Writer
}

// New creates a console over app.
func New(app *bootstrap.App, readPassword PasswordReader, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{app: app, readPassword: readPassword, logger: logger}
}

// Run processes commands from in until EOF, "exit" or ctx is done.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	c.sc = bufio.NewScanner(in)
	c.out = out

	fmt.Fprintln(out, "Noosflare: платформа для обучения в вузе")
	fmt.Fprintln(out, "Введите help для списка команд.")
	c.show()

	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintf(out, "\n[%s]> ", c.app.Session.State().Screen)
		if !c.sc.Scan() {
			break
		}

		quit, err := c.dispatch(ctx, strings.TrimSpace(c.sc.Text()))
		c.flushToasts()
		if err != nil {
			fmt.Fprintf(out, "Ошибка: %s\n", appErrors.Message(err))
			c.logger.Debug("command failed", zap.Error(err))
		}
		if quit {
			fmt.Fprintln(out, "До встречи!")
			return nil
		}
	}
	return c.sc.Err()
}

func (c *Console) dispatch(ctx context.Context, line string) (bool, error) {
	if line == "" {
		return false, nil
	}
	cmd, arg := splitCommand(line)
	session := c.app.Session

	switch cmd {
	case "exit", "quit":
		return true, nil
	case "help":
		c.help()
		return false, nil
	case "state":
		c.printState()
		return false, nil
	case "metrics":
		c.printMetrics()
		return false, nil
	case "go":
		return false, c.transition(session.Navigate(models.Screen(arg)))
	case "logout":
		return false, c.transition(session.Fire(service.Event{Kind: service.EventLogout}))
	case "back":
		return false, c.transition(session.Fire(service.Event{Kind: backEvent(session.State().Screen)}))
	}

	switch session.State().Screen {
	case models.ScreenLogin:
		return false, c.loginCommand(cmd)
	case models.ScreenRegister:
		return false, c.registerCommand(cmd)
	case models.ScreenForgotPassword:
		return false, c.resetCommand(ctx, cmd)
	case models.ScreenSubjects:
		return false, c.subjectsCommand(cmd, arg)
	case models.ScreenMaterials:
		return false, c.materialsCommand(cmd, arg)
	case models.ScreenUpload:
		return false, c.uploadCommand(ctx, cmd, arg)
	case models.ScreenProfile:
		if cmd == "show" {
			c.show()
			return false, nil
		}
	}
	c.unknown()
	return false, nil
}

func (c *Console) loginCommand(cmd string) error {
	session := c.app.Session
	switch cmd {
	case "login":
		email, _ := c.ask("Email: ")
		password, err := c.askSecret("Пароль: ")
		if err != nil {
			return err
		}
		return c.transition(session.Login(models.LoginRequest{Email: email, Password: password}))
	case "register":
		return c.transition(session.Fire(service.Event{Kind: service.EventSwitchToRegister}))
	case "forgot":
		return c.transition(session.Fire(service.Event{Kind: service.EventForgotPassword}))
	}
	c.unknown()
	return nil
}

func (c *Console) registerCommand(cmd string) error {
	session := c.app.Session
	switch cmd {
	case "register":
		nickname, _ := c.ask("Никнейм: ")
		email, _ := c.ask("Email: ")
		password, err := c.askSecret("Пароль: ")
		if err != nil {
			return err
		}
		confirm, err := c.askSecret("Подтвердите пароль: ")
		if err != nil {
			return err
		}
		terms, _ := c.ask("Принимаю условия использования (y/n): ")
		return c.transition(session.Register(models.RegisterRequest{
			Nickname:        nickname,
			Email:           email,
			Password:        password,
			ConfirmPassword: confirm,
			AcceptTerms:     yes(terms),
		}))
	case "login":
		return c.transition(session.Fire(service.Event{Kind: service.EventSwitchToLogin}))
	}
	c.unknown()
	return nil
}

func (c *Console) resetCommand(ctx context.Context, cmd string) error {
	reset, err := c.app.Session.PasswordReset()
	if err != nil {
		return err
	}

	switch cmd {
	case "email":
		email, _ := c.ask("Email: ")
		err = reset.SubmitEmail(email)
	case "code":
		code, _ := c.ask("Код из письма: ")
		err = reset.SubmitCode(code)
	case "resend":
		err = reset.Resend()
	case "change-email":
		err = reset.ChangeEmail()
	case "tick":
		reset.Tick()
	case "password":
		password, perr := c.askSecret("Новый пароль: ")
		if perr != nil {
			return perr
		}
		confirm, perr := c.askSecret("Подтвердите пароль: ")
		if perr != nil {
			return perr
		}
		err = reset.SubmitNewPassword(ctx, password, confirm)
	default:
		c.unknown()
		return nil
	}
	if err != nil {
		return err
	}
	c.show()
	return nil
}

func (c *Console) subjectsCommand(cmd, arg string) error {
	screen, err := c.app.Session.Subjects()
	if err != nil {
		return err
	}

	switch cmd {
	case "list":
	case "search":
		screen.SetSearch(arg)
	case "fav":
		favorite, err := screen.ToggleFavorite(arg)
		if err != nil {
			return err
		}
		if favorite {
			fmt.Fprintf(c.out, "%s добавлен в избранное\n", c.app.Catalog.SubjectDisplayName(arg))
		} else {
			fmt.Fprintf(c.out, "%s удален из избранного\n", c.app.Catalog.SubjectDisplayName(arg))
		}
		return nil
	case "open":
		return c.transition(c.app.Session.SelectSubject(arg))
	default:
		c.unknown()
		return nil
	}
	c.show()
	return nil
}

func (c *Console) materialsCommand(cmd, arg string) error {
	screen, err := c.app.Session.Materials()
	if err != nil {
		return err
	}

	switch cmd {
	case "list":
	case "search":
		screen.SetSearch(arg)
	case "topic":
		screen.SetTopic(arg)
	case "source":
		screen.SetSource(arg)
	case "kind":
		if err := screen.SetKind(models.MaterialKind(arg)); err != nil {
			return err
		}
	case "filters":
		renderFilters(c.out, screen.Listing())
		return nil
	case "report":
		id, reason := splitCommand(arg)
		details, _ := c.ask("Детали нарушения: ")
		return screen.Report(models.ReportRequest{MaterialID: id, Reason: models.ReportReason(reason), Details: details})
	default:
		c.unknown()
		return nil
	}
	c.show()
	return nil
}

func (c *Console) uploadCommand(ctx context.Context, cmd, arg string) error {
	session := c.app.Session
	switch cmd {
	case "form":
		subjectID, kind := splitCommand(arg)
		form, err := session.UploadForm(subjectID, models.MaterialKind(kind))
		if err != nil {
			return err
		}
		renderUploadForm(c.out, form)
		return nil
	case "submit":
		kind, _ := c.ask("Тип (video/notes): ")
		subjectID, _ := c.ask("Предмет (id): ")
		if form, err := session.UploadForm(subjectID, models.MaterialKind(kind)); err == nil && len(form.Topics) > 0 {
			fmt.Fprintf(c.out, "Темы: %s\n", strings.Join(form.Topics, ", "))
		}
		topic, _ := c.ask("Тема: ")
		source, _ := c.ask("Источник: ")
		title, _ := c.ask("Название: ")
		description, _ := c.ask("Описание (необязательно): ")
		fileName, _ := c.ask("Файл: ")
		rawSize, _ := c.ask("Размер в байтах (необязательно): ")

		var size int64
		if rawSize != "" {
			parsed, err := strconv.ParseInt(rawSize, 10, 64)
			if err != nil || parsed < 0 {
				return appErrors.Clone(appErrors.ErrValidation, "Размер файла должен быть неотрицательным числом")
			}
			size = parsed
		}

		upload, err := session.Upload(ctx, models.UploadRequest{
			Kind:        models.MaterialKind(kind),
			SubjectID:   subjectID,
			Topic:       topic,
			Source:      source,
			Title:       title,
			Description: description,
			FileName:    fileName,
			FileSize:    size,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Загрузка %s: %s", upload.ID, upload.Title)
		if upload.FileSize > 0 {
			fmt.Fprintf(c.out, " (%s)", service.FileSizeLabel(upload.FileSize))
		}
		fmt.Fprintln(c.out)
		return nil
	}
	c.unknown()
	return nil
}

// transition renders the new screen after a successful state change.
func (c *Console) transition(err error) error {
	if err != nil {
		return err
	}
	c.show()
	return nil
}

func (c *Console) show() {
	session := c.app.Session
	switch session.State().Screen {
	case models.ScreenLogin:
		fmt.Fprintln(c.out, "Вход: login, register, forgot")
	case models.ScreenRegister:
		fmt.Fprintln(c.out, "Регистрация: register, login")
	case models.ScreenForgotPassword:
		if reset, err := session.PasswordReset(); err == nil {
			renderReset(c.out, reset)
		}
	case models.ScreenSubjects:
		if screen, err := session.Subjects(); err == nil {
			renderSubjects(c.out, screen.Overview())
		}
	case models.ScreenMaterials:
		if screen, err := session.Materials(); err == nil {
			RenderListing(c.out, screen.Listing())
		}
	case models.ScreenUpload:
		fmt.Fprintln(c.out, "Загрузка материала: form <subject> <video|notes>, submit")
	case models.ScreenProfile:
		if profile, err := session.Profile(); err == nil {
			renderProfile(c.out, profile)
		}
	}
}

func (c *Console) flushToasts() {
	for _, toast := range c.app.Toasts.Drain() {
		marker := "[ok]"
		if toast.Level == models.ToastError {
			marker = "[!]"
		}
		fmt.Fprintf(c.out, "%s %s\n", marker, toast.Message)
	}
}

func (c *Console) printState() {
	state := c.app.Session.State()
	fmt.Fprintf(c.out, "Экран: %s\n", state.Screen)
	if state.User != nil {
		fmt.Fprintf(c.out, "Пользователь: %s (@%s)\n", state.User.Nickname, state.User.ID)
	}
	if state.SelectedSubjectID != "" {
		fmt.Fprintf(c.out, "Предмет: %s\n", c.app.Catalog.SubjectDisplayName(state.SelectedSubjectID))
	}
}

func (c *Console) printMetrics() {
	m := c.app.Metrics.Snapshot()
	fmt.Fprintf(c.out, "Переходы: %d (отклонено %d)\n", m.Transitions, m.RejectedTransitions)
	fmt.Fprintf(c.out, "Ошибки форм: %d\n", m.ValidationFailures)
	fmt.Fprintf(c.out, "Запросы материалов: %d (в среднем %.1f результатов)\n", m.MaterialQueries, m.AverageQueryResults)
	fmt.Fprintf(c.out, "Загрузки: %d\n", m.UploadsCompleted)
}

func (c *Console) help() {
	fmt.Fprintln(c.out, "Общие: help, state, metrics, go <subjects|upload|profile|materials>, back, logout, exit")
	fmt.Fprintln(c.out, "Вход: login, register, forgot")
	fmt.Fprintln(c.out, "Восстановление: email, code, resend, change-email, tick, password, back")
	fmt.Fprintln(c.out, "Предметы: list, search <текст>, fav <id>, open <id>")
	fmt.Fprintln(c.out, "Материалы: list, search <текст>, topic <тема|all>, source <источник|all>, kind <video|notes|all>, filters, report <id> [inappropriate|copyright|other]")
	fmt.Fprintln(c.out, "Загрузка: form <subject> <video|notes>, submit")
	fmt.Fprintln(c.out, "Профиль: show")
}

func (c *Console) unknown() {
	fmt.Fprintln(c.out, "Неизвестная команда. Введите help.")
}

func (c *Console) ask(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.sc.Text()), true
}

func (c *Console) askSecret(label string) (string, error) {
	if c.readPassword != nil {
		return c.readPassword(label)
	}
	value, _ := c.ask(label)
	return value, nil
}

func backEvent(screen models.Screen) service.EventKind {
	switch screen {
	case models.ScreenForgotPassword:
		return service.EventBackToLogin
	case models.ScreenRegister:
		return service.EventSwitchToLogin
	default:
		return service.EventBack
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func yes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}
