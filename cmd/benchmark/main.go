package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/sectionplanner/pkg/model"
)

const MB float32 = 1024 * 1024

type GeneratorType int

const (
	relaxed GeneratorType = iota
	strict
)

var generatorTypes = map[GeneratorType]string{
	relaxed: "relaxed",
	strict:  "strict",
}

type TestMetadata struct {
	Courses  int
	Sections int // Sections per category and course
	Seed     int64
}

type BenchmarkResult struct {
	Generator    GeneratorType
	Test         TestMetadata
	Combinations int // Sum of per-course combinations
	Candidates   uint64
	Schedules    int
	Duration     int64 // Milliseconds
	Memory       float32
}

func main() {
	coursesPtr := flag.String("courses", "2,3,4,5", "Comma-separated course counts to benchmark")
	sectionsPtr := flag.String("sections", "2,3,4", "Comma-separated section counts per category")
	seedPtr := flag.Int64("seed", 1, "Seed of the synthetic course generator")
	outPtr := flag.String("out", "benchmark_results.csv", "Path of the CSV results file")
	flag.Parse()

	tests := getTests(parseSizes(*coursesPtr), parseSizes(*sectionsPtr), *seedPtr)
	generators := []GeneratorType{relaxed, strict}
	results := make([]BenchmarkResult, 0, len(tests)*len(generators))

	for _, test := range tests {
		for _, generator := range generators {
			fmt.Printf("Benchmarking %v courses with %v sections per category using the %v generator\n", test.Courses, test.Sections, generatorTypes[generator])
			results = append(results, measure(generator, test))
		}
	}

	file, err := os.Create(*outPtr)
	if err != nil {
		log.Fatalf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := toCsv(file, results); err != nil {
		log.Fatalf("cannot write CSV file: %v", err)
	}
}

func parseSizes(text string) []int {
	return lo.Map(strings.Split(text, ","), func(size string, _ int) int {
		value, err := strconv.Atoi(strings.TrimSpace(size))
		if err != nil || value <= 0 {
			log.Fatalf("%q is not a positive size", size)
		}
		return value
	})
}

func getTests(courses, sections []int, seed int64) []TestMetadata {
	tests := make([]TestMetadata, 0, len(courses)*len(sections))
	for _, tuple := range lo.CrossJoin2(courses, sections) {
		tests = append(tests, TestMetadata{Courses: tuple.A, Sections: tuple.B, Seed: seed})
	}
	return tests
}

// Builds test.Courses courses with test.Sections sections per category, each on two random
// weekdays between 8:00 and 17:00
func generateCourses(test TestMetadata) []*model.CourseOffering {
	random := rand.New(rand.NewSource(test.Seed))
	var crn uint64

	courses := make([]*model.CourseOffering, 0, test.Courses)
	for i := range test.Courses {
		code := fmt.Sprintf("SYN %d", 100+i)
		sections := make([]*model.Section, 0, test.Sections*len(model.Categories))
		for _, category := range model.Categories {
			prefix := [...]string{"A", "B", "T"}[category]
			for j := range test.Sections {
				crn++
				start := model.Clock(8+random.Intn(8), 30*random.Intn(2))
				days := string([]byte{
					model.Weekdays[random.Intn(len(model.Weekdays))].Code(),
					model.Weekdays[random.Intn(len(model.Weekdays))].Code(),
				})
				section, err := model.NewSection(model.SectionInput{
					CRN:        crn,
					Code:       fmt.Sprintf("%s%02d", prefix, j+1),
					CourseCode: code,
					TimeRange:  fmt.Sprintf("%s - %s", start, start.Add(50)),
					Days:       days,
				})
				if err != nil {
					log.Fatalf("cannot build synthetic section: %v", err)
				}
				sections = append(sections, section)
			}
		}
		courses = append(courses, model.NewCourseOffering("Synthetic "+code, code, sections))
	}
	return courses
}

func measure(generator GeneratorType, test TestMetadata) BenchmarkResult {
	courses := generateCourses(test)
	enumerator := model.NewEnumerator(model.NewCombinationGenerator(generator == strict), nil)

	runtime.GC()
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	started := time.Now()
	result := enumerator.Enumerate(courses)
	duration := time.Since(started)

	runtime.ReadMemStats(&after)

	return BenchmarkResult{
		Generator:    generator,
		Test:         test,
		Combinations: lo.Sum(result.Combinations),
		Candidates:   result.Candidates,
		Schedules:    len(result.Schedules),
		Duration:     duration.Milliseconds(),
		Memory:       float32(after.TotalAlloc-before.TotalAlloc) / MB,
	}
}

func toCsv(w io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(w)

	header := []string{"Generator", "Courses", "Sections", "Seed", "Combinations", "Candidates", "Schedules", "Duration(ms)", "Memory(MB)"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			generatorTypes[result.Generator],
			fmt.Sprintf("%d", result.Test.Courses),
			fmt.Sprintf("%d", result.Test.Sections),
			fmt.Sprintf("%d", result.Test.Seed),
			fmt.Sprintf("%d", result.Combinations),
			fmt.Sprintf("%d", result.Candidates),
			fmt.Sprintf("%d", result.Schedules),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
