package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/essaehaan/Profile/internal/client/guard"
	"github.com/essaehaan/Profile/internal/client/models"
	"github.com/essaehaan/Profile/internal/client/services"
	"github.com/essaehaan/Profile/internal/client/validation"
)

func (a *App) Admin(ctx context.Context) error {
	return a.open(ctx, guard.PathAdmin)
}

func (a *App) dashboard(ctx context.Context) error {
	list, err := a.courses.List(ctx)
	if err != nil {
		return a.report(ctx, err, guard.PathAdmin)
	}
	st := services.Summarize(list)
	a.println("Admin dashboard")
	a.printf("Total courses: %d\n", st.Courses)
	a.printf("Revenue: %s\n", models.FormatPrice(st.Revenue))
	for _, c := range list {
		a.printf("[%s] %s - %s\n", c.ID, c.Title, c.Price)
	}
	a.println("Commands: create, edit <id>, delete <id>")
	return nil
}

func (a *App) CreateCourse(ctx context.Context) error {
	if !a.authorize(ctx, guard.PathAdmin) {
		return nil
	}
	draft, err := a.readDraft(nil)
	if err != nil {
		return a.report(ctx, err, guard.PathAdmin)
	}
	if errs := validation.Validate(draft); !errs.Valid() {
		a.printFieldErrors(errs)
		return errs.Err()
	}

	c, err := a.courses.Create(ctx, draft)
	if c != nil {
		a.printf("Course created: [%s] %s\n", c.ID, c.Title)
	}
	return a.report(ctx, err, guard.PathAdmin)
}

func (a *App) EditCourse(ctx context.Context, id string) error {
	if !a.authorize(ctx, guard.PathAdmin) {
		return nil
	}
	current, err := a.courses.Get(ctx, models.ID(id))
	if err != nil {
		return a.report(ctx, err, guard.PathAdmin)
	}
	draft, err := a.readDraft(current)
	if err != nil {
		return a.report(ctx, err, guard.PathAdmin)
	}
	if errs := validation.Validate(draft); !errs.Valid() {
		a.printFieldErrors(errs)
		return errs.Err()
	}

	c, err := a.courses.Update(ctx, current.ID, draft)
	if c != nil {
		a.printf("Course updated: [%s] %s\n", c.ID, c.Title)
	}
	return a.report(ctx, err, guard.PathAdmin)
}

func (a *App) DeleteCourse(ctx context.Context, id string) error {
	if !a.authorize(ctx, guard.PathAdmin) {
		return nil
	}
	answer, err := GetSimpleText(a.reader, "Are you sure you want to delete this course? (y/N)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		a.println("Cancelled")
		return nil
	}
	if err := a.courses.Delete(ctx, models.ID(id)); err != nil {
		return a.report(ctx, err, guard.PathAdmin)
	}
	a.println("Course deleted")
	return nil
}

// readDraft prompts for the course form. With a current course, an empty
// answer keeps the current value.
func (a *App) readDraft(current *models.Course) (validation.CourseDraft, error) {
	var cur models.Course
	if current != nil {
		cur = *current
	}
	price := ""
	if current != nil {
		price = strconv.FormatFloat(float64(cur.Price), 'f', -1, 64)
	}

	var d validation.CourseDraft
	var err error
	if d.Title, err = a.askDefault("Course title", cur.Title); err != nil {
		return d, err
	}
	if d.Description, err = a.askDefault("Course description", cur.Description); err != nil {
		return d, err
	}
	if d.Price, err = a.askDefault("Price", price); err != nil {
		return d, err
	}
	for {
		path, err := GetSimpleText(a.reader, "Image file path (optional)", a.out)
		if err != nil {
			return d, err
		}
		if d.Image, err = LoadAttachment(path); err != nil {
			return d, err
		}
		errs := validation.ValidateImage(d.Image)
		if errs.Valid() {
			return d, nil
		}
		a.printFieldErrors(errs)
		d.Image = nil
	}
}

func (a *App) askDefault(prompt, def string) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	v, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}
