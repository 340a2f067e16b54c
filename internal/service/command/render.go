package command

import (
	"fmt"
	"time"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/service/profile"
)

const timeLayout = "02/01/2006 15:04"

// FormatProfile renders a profile as Markdown.
func FormatProfile(p profile.Profile) string {
	f := NewResponseFormatter()

	identity := f.Empty("Identidade não definida.")
	if p.Identity != nil {
		identity = f.Combine(
			f.Label("Nome", orDash(p.Identity.Name)),
			f.Label("Gênero", orDash(p.Identity.Gender)),
			f.Label("Origem", orDash(p.Identity.Origin)),
		)
	}

	values := f.Empty("Nenhum valor registrado.")
	if len(p.Values) > 0 {
		items := make([]string, 0, len(p.Values))
		for _, v := range p.Values {
			items = append(items, fmt.Sprintf("**%s**: %s (força %.2f)", v.Name, v.Description, v.Strength))
		}
		values = f.List(items)
	}

	memories := f.Empty("Nenhuma memória recente.")
	if len(p.RecentMemories) > 0 {
		items := make([]string, 0, len(p.RecentMemories))
		for _, m := range p.RecentMemories {
			items = append(items, fmt.Sprintf("%s _(%s, importância %s%s)_",
				m.Content, orDash(m.Emotion), formatImportance(m.Importance), formatWhen(m.Timestamp)))
		}
		memories = f.List(items)
	}

	selfConcept := f.Empty("Autoconceito não definido.")
	if p.SelfConcept != nil {
		selfConcept = fmt.Sprintf("%s (força %.2f)\n", p.SelfConcept.Description, p.SelfConcept.Strength)
	}

	ideas := f.Empty("Nenhuma ideia diária.")
	if len(p.DailyIdeas) > 0 {
		items := make([]string, 0, len(p.DailyIdeas))
		for _, i := range p.DailyIdeas {
			items = append(items, fmt.Sprintf("`%s` %s", formatDate(i.Date), i.Idea))
		}
		ideas = f.List(items)
	}

	return f.Combine(
		f.Section("🪪", "Identidade", identity),
		f.Section("💎", "Valores", values),
		f.Section("🧠", "Memórias recentes", memories),
		f.Section("🪞", "Autoconceito", selfConcept),
		f.Section("💡", "Ideias diárias", ideas),
	)
}

// FormatSegments renders the three memory horizons as Markdown.
func FormatSegments(s profile.Segments) string {
	f := NewResponseFormatter()

	bucket := func(segments []core.MemorySegment, empty string) string {
		if len(segments) == 0 {
			return f.Empty(empty)
		}
		items := make([]string, 0, len(segments))
		for _, m := range segments {
			items = append(items, fmt.Sprintf("%s _(%s, importância %s%s)_",
				m.Content, orDash(m.AssociatedEmotion), formatImportance(m.Importance), formatWhen(m.Timestamp)))
		}
		return f.List(items)
	}

	return f.Combine(
		f.Section("⚡", fmt.Sprintf("Curto prazo (%d)", len(s.ShortTerm)), bucket(s.ShortTerm, "Nenhuma memória de curto prazo encontrada.")),
		f.Section("🕰", fmt.Sprintf("Médio prazo (%d)", len(s.MediumTerm)), bucket(s.MediumTerm, "Nenhuma memória de médio prazo encontrada.")),
		f.Section("🏛", fmt.Sprintf("Longo prazo (%d)", len(s.LongTerm)), bucket(s.LongTerm, "Nenhuma memória de longo prazo encontrada.")),
	)
}

// FormatThoughts renders the introspection line shown under a reply.
func FormatThoughts(t core.Thoughts) string {
	return fmt.Sprintf("💭 _%s_ · %s · %d/10", t.Reflection, t.Emotion, t.Importance)
}

func formatImportance(v float64) string {
	return fmt.Sprintf("%g", v)
}

func formatWhen(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return ", " + t.Local().Format(timeLayout)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "sem data"
	}
	return t.Format("02/01/2006")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
