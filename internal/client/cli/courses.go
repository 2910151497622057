package cli

import (
	"context"

	"github.com/essaehaan/Profile/internal/client/guard"
	"github.com/essaehaan/Profile/internal/client/models"
)

func (a *App) Courses(ctx context.Context) error {
	return a.open(ctx, guard.PathCourses)
}

func (a *App) Course(ctx context.Context, id string) error {
	return a.open(ctx, guard.CoursePath(id))
}

func (a *App) listCourses(ctx context.Context) error {
	list, err := a.courses.List(ctx)
	if err != nil {
		return a.report(ctx, err, guard.PathCourses)
	}
	if len(list) == 0 {
		a.println("No courses available yet")
		return nil
	}
	for _, c := range list {
		a.printf("[%s] %s - %s\n", c.ID, c.Title, c.Price)
	}
	return nil
}

func (a *App) showCourse(ctx context.Context, id models.ID) error {
	c, err := a.courses.Get(ctx, id)
	if err != nil {
		return a.report(ctx, err, guard.CoursePath(id.String()))
	}
	a.println(c.Title)
	a.println("Price:", c.Price)
	a.println(c.Description)
	if c.Picture != "" {
		a.println("Picture:", c.Picture)
	}
	a.printf("Type 'buy %s' to purchase this course\n", c.ID)
	return nil
}
