package shell

import (
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/limaJavier/sectionplanner/internal/metrics"
	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
	"github.com/limaJavier/sectionplanner/pkg/export"
	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/limaJavier/sectionplanner/pkg/render"
)

var sortedBy = map[model.Criterion]string{
	model.LatestStartFirst:    "latest start time",
	model.EarliestFinishFirst: "earliest finish time",
	model.DaysOffFirst:        "days off",
}

func (shell *Shell) findSchedules() error {
	if len(shell.courses) == 0 {
		shell.println("You have not added any courses yet. I'll be happy to work out some schedules once you add some with 'a'.")
		return nil
	}

	started := time.Now()
	result := shell.enumerator.Enumerate(shell.courses)
	elapsed := time.Since(started)
	metrics.ObserveEnumeration(result.Candidates, len(result.Schedules), elapsed)
	shell.logger.Info("schedules enumerated",
		zap.Int("courses", len(result.Courses)),
		zap.Uint64("candidates", result.Candidates),
		zap.Int("schedules", len(result.Schedules)),
		zap.Duration("elapsed", elapsed),
	)

	schedules := result.Schedules
	shell.printf("I found %d possible schedules.\n", len(schedules))
	if len(schedules) == 0 {
		shell.println("If you have locked sections, try unlocking them. You can also deactivate some courses")
		shell.println("to see which schedules you could get without them.")
		return nil
	}

	summary := model.Summarize(schedules)
	shell.printf("Latest possible start time: %s\n", summary.LatestStart)
	shell.printf("Earliest possible finish time: %s\n", summary.EarliestFinish)
	shell.printf("Number of schedules with at least one day off: %d\n", summary.WithDayOff)
	shell.println("")

	for {
		shell.println("How would you like to sort the schedules? Sort by several criteria from the least")
		shell.println("important to the most important one; the last sort has the final say.")
		shell.println("l - latest start times first")
		shell.println("f - earliest finishing times first")
		shell.println("d - days off first")
		shell.println("g - go, view the schedules")
		shell.println("x <file> - export every schedule (.csv, .pdf, .xlsx)")
		shell.println("e - exit/back")

		line, err := shell.promptLine()
		if err != nil {
			return err
		}
		action := strings.ToLower(line)

		switch {
		case action == "l" || action == "f" || action == "d":
			criterion, _ := model.ParseCriterion(action)
			if err := model.Sort(schedules, criterion); err != nil {
				shell.printf("Sorry, %v\n", err)
				continue
			}
			shell.printf("Sorted the schedules by %s.\n", sortedBy[criterion])
		case action == "g":
			if err := shell.viewSchedules(schedules); err != nil {
				return err
			}
		case strings.HasPrefix(action, "x "):
			shell.exportSchedules(strings.TrimSpace(line[2:]), schedules)
		case action == "e":
			return nil
		default:
			shell.println("Sorry, I don't know what that means.")
		}
	}
}

func (shell *Shell) viewSchedules(schedules []model.CombinedSchedule) error {
	selected := 0
	for {
		schedule := schedules[selected]
		if err := render.Calendar(shell.out, schedule); err != nil {
			return err
		}
		for _, course := range schedule.CourseSchedules() {
			shell.println(course.Summary())
		}
		shell.printf("Viewing schedule (%d of %d)\n", selected+1, len(schedules))
		shell.println("n - next, b - back, e - exit, x <file> - export this schedule (.csv, .pdf, .xlsx, .ics)")

		line, err := shell.promptLine()
		if err != nil {
			return err
		}
		action := strings.ToLower(line)

		switch {
		case action == "n":
			selected = (selected + 1) % len(schedules)
		case action == "b":
			selected = (selected - 1 + len(schedules)) % len(schedules)
		case action == "e":
			return nil
		case strings.HasPrefix(action, "x "):
			shell.exportSchedules(strings.TrimSpace(line[2:]), schedules[selected:selected+1])
		default:
			shell.println("Sorry, I don't know what that means.")
		}
	}
}

func (shell *Shell) exportSchedules(path string, schedules []model.CombinedSchedule) {
	format := strings.ToLower(filepath.Ext(path))
	if err := export.ExportFile(path, schedules, shell.term); err != nil {
		metrics.IncExportsWritten(format, "error")
		shell.logger.Warn("export failed", zap.String("path", path), zap.String("code", apperrors.CodeOf(err)), zap.Error(err))
		shell.printf("Sorry, %v\n", err)
		return
	}
	metrics.IncExportsWritten(format, "ok")
	shell.logger.Info("export written", zap.String("path", path), zap.Int("schedules", len(schedules)))
	shell.printf("Saved %d schedule(s) to %s.\n", len(schedules), path)
}
