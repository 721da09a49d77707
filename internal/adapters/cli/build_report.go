package cli

import (
	"fmt"
	"io"
	"time"
)

type BuildStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type ReportOutput interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Writer() io.Writer
	ErrWriter() io.Writer
}

type BuildIssue struct {
	Scope   string
	Message string
	Details []string
}

type BuildReport struct {
	out         ReportOutput
	steps       []*BuildStep
	warnings    []BuildIssue
	errors      []BuildIssue
	files       []string
	startTime   time.Time
	launchCount int
	outputDir   string
	hasFailures bool
}

func NewBuildReport(out ReportOutput, outputDir string) *BuildReport {
	return &BuildReport{
		out:       out,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *BuildReport) SetLaunchCount(count int) {
	r.launchCount = count
}

func (r *BuildReport) AddFile(path string) {
	r.files = append(r.files, path)
}

func (r *BuildReport) Files() []string {
	return r.files
}

func (r *BuildReport) StartStep(name string) *BuildStep {
	step := &BuildStep{
		Name:      name,
		StartTime: time.Now(),
	}
	r.steps = append(r.steps, step)
	return step
}

func (r *BuildReport) EndStep(step *BuildStep, err error) {
	step.EndTime = time.Now()
	step.Success = err == nil
	if err != nil {
		step.Error = err.Error()
		r.hasFailures = true
	}
}

func (r *BuildReport) AddWarning(scope string, message string, details []string) {
	r.warnings = append(r.warnings, BuildIssue{
		Scope:   scope,
		Message: message,
		Details: details,
	})
}

func (r *BuildReport) AddError(scope string, message string, details []string) {
	r.errors = append(r.errors, BuildIssue{
		Scope:   scope,
		Message: message,
		Details: details,
	})
	r.hasFailures = true
}

func (r *BuildReport) HasFailures() bool {
	return r.hasFailures
}

func (r *BuildReport) Render() {
	duration := time.Since(r.startTime)

	if len(r.errors) == 0 && len(r.warnings) == 0 && !r.hasFailures {
		r.renderMinimal(duration)
	} else {
		r.renderVerbose(duration)
	}
}

func (r *BuildReport) renderMinimal(duration time.Duration) {
	w := r.out.Writer()
	fmt.Fprintf(w, "  "+r.out.Green("✓ ")+"%d launches fetched\n", r.launchCount)
	fmt.Fprintf(w, "  "+r.out.Green("✓ ")+"%d files written\n", len(r.files))
	fmt.Fprintf(w, "  "+r.out.Green("✓ ")+"Build complete in %s\n", formatDuration(duration))

	if r.outputDir != "" {
		fmt.Fprintf(w, "\n  %s\n", r.out.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderVerbose(duration time.Duration) {
	w := r.out.Writer()
	errW := r.out.ErrWriter()

	fmt.Fprintf(w, "  %d launches fetched\n", r.launchCount)

	fmt.Fprintln(w)
	for _, step := range r.steps {
		status := r.out.Green("✓")
		if !step.Success {
			status = r.out.Red("✗")
		}
		fmt.Fprintf(w, "  %s %s\n", status, step.Name)
		if step.Error != "" {
			fmt.Fprintf(w, "      %s\n", r.out.Gray(step.Error))
		}
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(errW)
		fmt.Fprintf(errW, "  "+r.out.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		r.renderIssues(errW, r.errors)
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  "+r.out.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		r.renderIssues(w, r.warnings)
	}

	fmt.Fprintln(w)
	if r.hasFailures {
		fmt.Fprintf(errW, "  %s\n", r.out.Red(fmt.Sprintf("Build failed after %s", formatDuration(duration))))
		return
	}

	fmt.Fprintf(w, "  "+r.out.Green("✓ ")+"Build complete in %s\n", formatDuration(duration))
	if r.outputDir != "" {
		fmt.Fprintf(w, "\n  %s\n", r.out.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderIssues(w io.Writer, issues []BuildIssue) {
	for _, issue := range issues {
		fmt.Fprintf(w, "  %s %s\n", r.out.Red("✗"), issue.Scope)
		fmt.Fprintf(w, "    %s\n", issue.Message)

		for _, detail := range deduplicateStrings(issue.Details) {
			fmt.Fprintf(w, "      • %s\n", detail)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// deduplicateStrings collapses repeats while keeping first-seen order.
func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	counts := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if counts[item] > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, counts[item]))
		} else {
			result = append(result, item)
		}
	}
	return result
}
