package provider

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
	"github.com/limaJavier/sectionplanner/pkg/model"
)

const meetingTimesCaption = "Scheduled Meeting Times"

// Meeting table cells; column 0 holds the weeks the section runs and is not used
const (
	timeCell       = 1
	daysCell       = 2
	locationCell   = 3
	instructorCell = 6
)

// "Title - CRN - CODE - SECTION"; the title itself may contain " - "
var titlePattern = regexp.MustCompile(`(.+) - (.+) - (.+) - (\S+)`)

// ParseCoursePage reads a registrar "class schedule listing" page for one course.
//
// Every "Scheduled Meeting Times" table is paired with the closest section title header
// before it, and the first row of the table describes the section. All sections of the page
// must agree on the course title and code.
func ParseCoursePage(r io.Reader, logger *zap.Logger) (*model.CourseOffering, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInconsistentCourseData.Code, "cannot parse course page")
	}

	var (
		title, code  string
		latestHeader string
		inputs       []model.SectionInput
		parseErr     error
	)
	doc.Find("th.ddtitle, th.ddlabel, caption").EachWithBreak(func(_ int, node *goquery.Selection) bool {
		text := strings.TrimSpace(node.Text())
		if !node.Is("caption") {
			if titlePattern.MatchString(text) {
				latestHeader = text
			}
			return true
		}
		if text != meetingTimesCaption {
			return true
		}

		input, sectionTitle, err := parseMeetingTable(latestHeader, node.Parent())
		if err != nil {
			parseErr = err
			return false
		}
		if title == "" {
			title, code = sectionTitle, input.CourseCode
		}
		if sectionTitle != title || input.CourseCode != code {
			parseErr = apperrors.Clonef(apperrors.ErrInconsistentCourseData, "section %s belongs to %q (%s) but the page is about %q (%s)", input.Code, sectionTitle, input.CourseCode, title, code)
			return false
		}
		inputs = append(inputs, input)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if len(inputs) == 0 {
		return nil, apperrors.Clone(apperrors.ErrInconsistentCourseData, "the page lists no scheduled sections")
	}

	return buildCourse(title, code, inputs, logger)
}

func parseMeetingTable(header string, table *goquery.Selection) (model.SectionInput, string, error) {
	match := titlePattern.FindStringSubmatch(header)
	if match == nil {
		return model.SectionInput{}, "", apperrors.Clone(apperrors.ErrInconsistentCourseData, "meeting times table without a section title before it")
	}
	title := strings.TrimSpace(match[1])
	crn, err := strconv.ParseUint(strings.TrimSpace(match[2]), 10, 64)
	if err != nil {
		return model.SectionInput{}, "", apperrors.Wrap(err, apperrors.ErrInconsistentCourseData.Code, fmt.Sprintf("section title %q has no numeric CRN", header))
	}

	cells := table.Find("td")
	if cells.Length() <= instructorCell {
		return model.SectionInput{}, "", apperrors.Clonef(apperrors.ErrInconsistentCourseData, "meeting times of CRN %d have %d cells, expected at least %d", crn, cells.Length(), instructorCell+1)
	}
	cell := func(index int) string { return strings.TrimSpace(cells.Eq(index).Text()) }

	return model.SectionInput{
		CRN:        crn,
		Code:       match[4],
		CourseCode: strings.TrimSpace(match[3]),
		TimeRange:  cell(timeCell),
		Days:       cell(daysCell),
		Location:   cell(locationCell),
		Instructor: cell(instructorCell),
	}, title, nil
}
