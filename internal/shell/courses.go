package shell

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/limaJavier/sectionplanner/internal/metrics"
	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
	"github.com/limaJavier/sectionplanner/pkg/model"
)

// AddCourses appends courses to the session, skipping codes already present. It returns
// the courses actually added.
func (shell *Shell) AddCourses(courses ...*model.CourseOffering) []*model.CourseOffering {
	added := make([]*model.CourseOffering, 0, len(courses))
	for _, course := range courses {
		if lo.ContainsBy(shell.courses, func(existing *model.CourseOffering) bool { return existing.Code == course.Code }) {
			shell.printf("%s is already in your list, so I left it as it is.\n", course.Code)
			continue
		}
		shell.courses = append(shell.courses, course)
		added = append(added, course)
		shell.logger.Info("course added",
			zap.String("course", course.Code),
			zap.Int("sections", course.SectionCount()),
		)
	}
	return added
}

func (shell *Shell) addCourse(ctx context.Context) error {
	shell.println("Enter the address of a course's schedule listing page, or the path of a course file.")
	source, err := shell.promptLine()
	if err != nil {
		return err
	}

	kind := sourceKind(source)
	courses, err := shell.provider.Courses(ctx, source)
	if err != nil {
		metrics.IncCoursesLoaded(kind, "error")
		shell.logger.Warn("course load failed", zap.String("source", source), zap.String("code", apperrors.CodeOf(err)), zap.Error(err))
		shell.printf("Sorry, I could not load that: %v\n", err)
		return nil
	}
	metrics.IncCoursesLoaded(kind, "ok")

	for _, course := range shell.AddCourses(courses...) {
		shell.printf("Added %s: %s. Please make sure the details below are correct.\n", course.Code, course.Title)
		shell.listSections(course, -1)
	}
	return nil
}

func sourceKind(source string) string {
	lower := strings.ToLower(source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return "http"
	}
	return "file"
}

func (shell *Shell) manageCourses() error {
	if len(shell.courses) == 0 {
		shell.println("You have not added any courses yet. Use 'a' to add a course or two first.")
		return nil
	}

	selected := 0
	for {
		shell.println("Here are the courses you added. Enter a number to select another one, then choose an action.")
		for i, course := range shell.courses {
			shell.printf("(%d) %s %s\n", i, marker(i == selected), course)
		}
		shell.println("d - delete, a - activate/deactivate, s - list/edit sections, e - back, # - select a course")

		action, err := shell.prompt()
		if err != nil {
			return err
		}

		switch action {
		case "d":
			shell.removeCourse(selected)
			shell.println("Deleted.")
			if len(shell.courses) == 0 {
				shell.println("That was the last course, so I'm taking you back to the main menu.")
				return nil
			}
			selected = 0
		case "a":
			course := shell.courses[selected]
			course.ToggleActive()
			shell.printf("%s\n", course)
		case "s":
			if err := shell.manageSections(selected); err != nil {
				return err
			}
			if len(shell.courses) == 0 {
				shell.println("There are no courses left, so I'm taking you back to the main menu.")
				return nil
			}
			if selected >= len(shell.courses) {
				selected = 0
			}
		case "e":
			return nil
		default:
			choice, problem := parseChoice(action, len(shell.courses))
			if problem != "" {
				shell.println(problem)
				continue
			}
			selected = choice
		}
	}
}

func (shell *Shell) removeCourse(index int) {
	shell.logger.Info("course removed", zap.String("course", shell.courses[index].Code))
	shell.courses = append(shell.courses[:index:index], shell.courses[index+1:]...)
}

func (shell *Shell) manageSections(index int) error {
	course := shell.courses[index]
	selected := 0
	for {
		if course.SectionCount() == 0 {
			shell.printf("%s has no sections left, so I removed it. You can add it again from the main menu.\n", course.Code)
			shell.removeCourse(index)
			return nil
		}

		shell.printf("Viewing %s: %s\n", course.Code, course.Title)
		shell.println("Delete the sections you cannot take; they will not be used for planning until you add the course again.")
		shell.println("Lock a section to only see schedules with it. Only one lecture, one lab and one tutorial can be locked.")
		shell.listSections(course, selected)
		shell.println("d - delete, l - lock/unlock, e - back, # - select a section")

		action, err := shell.prompt()
		if err != nil {
			return err
		}

		switch action {
		case "d", "l":
			category, position, err := course.Locate(selected)
			if err != nil {
				shell.printf("Sorry, %v\n", err)
				continue
			}
			if action == "d" {
				err = course.DeleteSection(category, position)
				selected = 0
			} else {
				err = course.ToggleLock(category, position)
			}
			if err != nil {
				shell.printf("Sorry, %v\n", err)
			}
		case "e":
			return nil
		default:
			choice, problem := parseChoice(action, course.SectionCount())
			if problem != "" {
				shell.println(problem)
				continue
			}
			selected = choice
		}
	}
}

// Prints the sections of a course grouped by category with their flat numbers
func (shell *Shell) listSections(course *model.CourseOffering, selected int) {
	number := 0
	for _, category := range model.Categories {
		name := category.String()
		shell.printf("%s%s sections:\n", strings.ToUpper(name[:1]), name[1:])
		for _, section := range course.Sections(category) {
			suffix := ""
			if section.Locked() {
				suffix = " (locked)"
			}
			shell.printf("  (%d) %s %s%s\n", number, marker(number == selected), section, suffix)
			number++
		}
	}
}

func marker(selected bool) string {
	if selected {
		return "-->"
	}
	return "   "
}
