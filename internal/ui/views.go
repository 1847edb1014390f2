package ui

import (
	"fmt"
	"strings"
	"time"

	"clipchef/internal/domain"
)

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ClipChef"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.view {
	case viewHome:
		b.WriteString(m.renderHome())
	case viewCapture:
		b.WriteString(m.renderCapture())
	case viewPlanner:
		b.WriteString(m.renderPlanner())
	case viewShopping:
		b.WriteString(m.renderShopping())
	case viewDetail:
		b.WriteString(m.renderDetail())
	case viewCooking:
		b.WriteString(m.renderCooking())
	}

	b.WriteString("\n")
	if m.notice != "" {
		style := noticeStyle
		if m.noticeUrgent {
			style = urgentStyle
		}
		b.WriteString(style.Render("● " + m.notice))
		b.WriteString("\n")
	}
	b.WriteString(hintBarStyle.Render(m.hints()))
	return b.String()
}

func (m *model) renderTabs() string {
	active := m.tabIndex()
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == active {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m *model) hints() string {
	switch m.view {
	case viewHome:
		return "↑/↓ move · enter open · d delete · 1-4 tabs · q quit"
	case viewCapture:
		return "type or ctrl+v paste · enter capture · esc unfocus · ctrl+c quit"
	case viewPlanner:
		if m.assigning {
			return "↑/↓ choose recipe · enter assign · esc cancel"
		}
		return "↑/↓ day · ←/→ meal · enter assign · x clear · [/] week · q quit"
	case viewShopping:
		return "1-4 tabs · q quit"
	case viewDetail:
		return "↑/↓ move · space toggle · c cook · d delete · esc back"
	case viewCooking:
		return "→/n next · ←/p back · t timer · esc stop"
	}
	return ""
}

func (m *model) renderHome() string {
	recipes := m.app.Recipes()
	if len(recipes) == 0 {
		return secondaryStyle.Render("No recipes yet. Capture one from a URL (press 2).")
	}
	if m.cursor >= len(recipes) {
		m.cursor = len(recipes) - 1
	}
	var b strings.Builder
	for i, r := range recipes {
		marker := "  "
		line := fmt.Sprintf("%s  %s · %s · %d min", r.Title, r.Category, r.Difficulty, r.TotalTime())
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			b.WriteString(marker + primaryStyle.Render(line))
		} else {
			b.WriteString(marker + secondaryStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *model) renderCapture() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Capture a recipe"))
	b.WriteString("\n\n")
	b.WriteString(m.urlInput.View())
	b.WriteString("\n\n")
	switch {
	case m.capturing:
		b.WriteString(m.spin.View() + primaryStyle.Render(" Extracting recipe..."))
	case m.captureErr != "":
		b.WriteString(urgentStyle.Render("✗ " + m.captureErr))
	case m.lastSaved != "":
		b.WriteString(noticeStyle.Render("✓ Saved " + m.lastSaved))
	default:
		b.WriteString(secondaryStyle.Render("Paste a video or article URL and press enter."))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *model) renderPlanner() string {
	week := m.app.Week(m.weekStart)
	var b strings.Builder
	b.WriteString(headerStyle.Render("Week of " + m.weekStart.Format("Jan 2, 2006")))
	b.WriteString("\n\n")
	for di, plan := range week {
		day := m.weekStart.AddDate(0, 0, di)
		b.WriteString(primaryStyle.Render(day.Format("Mon 02")))
		b.WriteString("  ")
		for si, slot := range domain.Slots {
			cell := m.slotLabel(&plan, slot)
			cell = fmt.Sprintf("%-24s", cell)
			switch {
			case di == m.planDay && si == m.planSlot && !m.assigning:
				b.WriteString(cursorStyle.Render(cell))
			case plan.Slot(slot) == "":
				b.WriteString(slotEmptyStyle.Render(cell))
			default:
				b.WriteString(primaryStyle.Render(cell))
			}
		}
		b.WriteString("\n")
	}
	if m.assigning {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Assign to " + string(domain.Slots[m.planSlot])))
		b.WriteString("\n")
		for i, r := range m.app.Recipes() {
			if i == m.assignIdx {
				b.WriteString(cursorStyle.Render("> " + r.Title))
			} else {
				b.WriteString(secondaryStyle.Render("  " + r.Title))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// slotLabel resolves a slot's recipe ID to its title. Deleted recipes
// leave dangling IDs behind until the cascade runs, so an unresolvable
// ID reads as empty rather than erroring.
func (m *model) slotLabel(plan *domain.DailyPlan, slot domain.MealSlot) string {
	id := plan.Slot(slot)
	if id == "" {
		return string(slot)
	}
	r, err := m.app.Recipe(id)
	if err != nil {
		return string(slot)
	}
	title := r.Title
	if len(title) > 22 {
		title = title[:21] + "…"
	}
	return title
}

func (m *model) renderShopping() string {
	items := m.app.ShoppingList()
	var b strings.Builder
	b.WriteString(headerStyle.Render("Shopping list"))
	b.WriteString("\n\n")
	if len(items) == 0 {
		b.WriteString(secondaryStyle.Render("Nothing to buy. Check off ingredients from a recipe to clear them here."))
		b.WriteString("\n")
		return b.String()
	}
	for _, it := range items {
		b.WriteString(primaryStyle.Render("· " + ingredientLine(it.Ingredient)))
		b.WriteString(secondaryStyle.Render("  (" + it.RecipeTitle + ")"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *model) renderDetail() string {
	r, err := m.app.Recipe(m.detailID)
	if err != nil {
		return secondaryStyle.Render("Recipe not found.")
	}
	rows := len(r.Ingredients) + len(r.Steps)
	if m.detailCursor >= rows && rows > 0 {
		m.detailCursor = rows - 1
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(r.Title))
	b.WriteString("\n")
	meta := fmt.Sprintf("%s · %s · prep %d min · cook %d min · serves %d",
		r.Category, r.Difficulty, r.PrepTime, r.CookTime, r.Servings)
	b.WriteString(secondaryStyle.Render(meta))
	b.WriteString("\n\n")

	b.WriteString(primaryStyle.Render("Ingredients"))
	b.WriteString("\n")
	for i, ing := range r.Ingredients {
		b.WriteString(m.checkRow(i, ing.Checked, ingredientLine(ing)))
	}

	b.WriteString("\n")
	b.WriteString(primaryStyle.Render("Steps"))
	b.WriteString("\n")
	for i, st := range r.Steps {
		label := fmt.Sprintf("%d. %s", i+1, st.Instruction)
		if st.TimerMinutes != nil {
			label += timerStyle.Render(fmt.Sprintf(" ⏱ %dm", *st.TimerMinutes))
		}
		b.WriteString(m.checkRow(len(r.Ingredients)+i, st.Completed, label))
	}

	if r.Notes != "" {
		b.WriteString("\n" + secondaryStyle.Render("Notes: "+r.Notes) + "\n")
	}
	for _, tip := range r.Tips {
		b.WriteString(secondaryStyle.Render("Tip: "+tip) + "\n")
	}
	return b.String()
}

func (m *model) checkRow(idx int, checked bool, label string) string {
	box := "[ ] "
	if checked {
		box = "[x] "
		label = checkedStyle.Render(label)
	} else {
		label = primaryStyle.Render(label)
	}
	marker := "  "
	if idx == m.detailCursor {
		marker = cursorStyle.Render("> ")
	}
	return marker + box + label + "\n"
}

func (m *model) renderCooking() string {
	sess := m.app.ActiveSession()
	if sess == nil {
		return secondaryStyle.Render("No active cooking session.")
	}
	step := sess.Step()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Step %d of %d", sess.Index()+1, sess.Len())))
	b.WriteString("\n\n")
	b.WriteString(primaryStyle.Render(step.Instruction))
	b.WriteString("\n\n")

	if remaining, ok := m.app.StepTimerRemaining(step.ID); ok {
		b.WriteString(timerStyle.Render("⏱ " + formatDuration(remaining) + " remaining"))
		b.WriteString("\n")
	} else if step.TimerMinutes != nil {
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("⏱ %d minute timer available (press t)", *step.TimerMinutes)))
		b.WriteString("\n")
	}
	return b.String()
}

func ingredientLine(ing domain.Ingredient) string {
	qty := strings.TrimSpace(ing.Amount + " " + ing.Unit)
	if qty == "" {
		return ing.Name
	}
	return qty + " " + ing.Name
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	min := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", min, sec)
}
