package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/noah-isme/noosflare/internal/dto"
	"github.com/noah-isme/noosflare/internal/models"
	"github.com/noah-isme/noosflare/internal/service"
	"github.com/noah-isme/noosflare/pkg/plural"
)

const emptyMaterials = "Материалы не найдены. Попробуйте изменить фильтры."

func renderSubjects(out io.Writer, overview dto.SubjectsOverview) {
	if overview.Query != "" {
		fmt.Fprintf(out, "Поиск: %q\n", overview.Query)
	}
	if len(overview.Subjects) == 0 {
		fmt.Fprintln(out, "Предметы не найдены")
	}
	for _, card := range overview.Subjects {
		renderSubjectCard(out, card)
	}

	renderPanel(out, "Популярные предметы", overview.Popular)
	renderPanel(out, "Избранные предметы", overview.Favorites)
	renderPanel(out, "Недавно просмотренные", overview.RecentlyViewed)
}

// RenderSubjectList prints subjects with their declared material counts.
func RenderSubjectList(out io.Writer, subjects []models.Subject) {
	if len(subjects) == 0 {
		fmt.Fprintln(out, "Предметы не найдены")
		return
	}
	for _, subject := range subjects {
		fmt.Fprintf(out, "%-12s %s: %s (%s)\n", subject.ID, subject.Name, subject.Description, plural.Materials(subject.MaterialsCount))
	}
}

func renderSubjectCard(out io.Writer, card dto.SubjectCard) {
	star := " "
	if card.Favorite {
		star = "*"
	}
	fmt.Fprintf(out, "%s %-12s %s: %s (%s)\n", star, card.Subject.ID, card.Subject.Name, card.Subject.Description, card.CountLabel)
}

func renderPanel(out io.Writer, title string, cards []dto.SubjectCard) {
	if len(cards) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s\n", title)
	for _, card := range cards {
		fmt.Fprintf(out, "  %s (%s)\n", card.Subject.Name, card.CountLabel)
	}
}

// RenderListing prints a materials screen.
func RenderListing(out io.Writer, listing dto.MaterialListing) {
	fmt.Fprintf(out, "%s: %s\n", listing.SubjectName, listing.CountLabel)
	if listing.Empty {
		fmt.Fprintln(out, emptyMaterials)
		return
	}
	for _, card := range listing.Items {
		m := card.Material
		fmt.Fprintf(out, "- [%s] %s (%s)\n", m.ID, m.Title, kindLabel(m.Kind))
		fmt.Fprintf(out, "  %s / %s, %s, %s\n", m.Topic, m.Source, m.Author, card.DateLabel)
		fmt.Fprintf(out, "  %s, %s", card.ViewsLabel, card.LikesLabel)
		if card.Badge != "" {
			fmt.Fprintf(out, ", %s", card.Badge)
		}
		fmt.Fprintln(out)
	}
}

func renderFilters(out io.Writer, listing dto.MaterialListing) {
	f := listing.Filter
	fmt.Fprintf(out, "Поиск: %q\n", f.Search)
	fmt.Fprintf(out, "Тема: %s (%s)\n", f.Topic, joinOrDash(listing.Topics))
	fmt.Fprintf(out, "Источник: %s (%s)\n", f.Source, joinOrDash(listing.Sources))
	fmt.Fprintf(out, "Тип: %s\n", f.Kind)
}

func renderUploadForm(out io.Writer, form dto.UploadForm) {
	ids := make([]string, 0, len(form.Subjects))
	for _, subject := range form.Subjects {
		ids = append(ids, subject.ID)
	}
	fmt.Fprintf(out, "Предметы: %s\n", strings.Join(ids, ", "))
	fmt.Fprintf(out, "Темы: %s\n", joinOrDash(form.Topics))
	fmt.Fprintf(out, "Форматы: %s\n", form.AcceptedFormat)
}

func renderProfile(out io.Writer, profile dto.ProfileOverview) {
	fmt.Fprintf(out, "[%s] %s %s\n", profile.Initial, profile.User.Nickname, profile.Handle)
	fmt.Fprintf(out, "Мои загрузки: %s\n", profile.CountLabel)
	for _, card := range profile.Uploads {
		u := card.Upload
		fmt.Fprintf(out, "- %s (%s, %s) %s, %s", u.Title, card.SubjectName, kindLabel(u.Kind), card.StatusLabel, card.DateLabel)
		if card.SizeLabel != "" {
			fmt.Fprintf(out, ", %s", card.SizeLabel)
		}
		fmt.Fprintln(out)
	}
}

func renderReset(out io.Writer, reset *service.PasswordReset) {
	switch reset.Step() {
	case service.ResetStepEmail:
		fmt.Fprintln(out, "Восстановление пароля: email, back")
	case service.ResetStepCode:
		fmt.Fprintf(out, "Код отправлен на %s: code, change-email", reset.Email())
		if reset.ResendReady() {
			fmt.Fprintln(out, ", resend")
		} else {
			fmt.Fprintf(out, " (повторная отправка через %d сек)\n", reset.ResendRemaining())
		}
	case service.ResetStepNewPassword:
		fmt.Fprintln(out, "Новый пароль: password")
	case service.ResetStepSuccess:
		fmt.Fprintln(out, "Пароль изменен. Вернитесь ко входу: back")
	}
}

func kindLabel(kind models.MaterialKind) string {
	if kind == models.KindVideo {
		return "видео"
	}
	return "конспект"
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
