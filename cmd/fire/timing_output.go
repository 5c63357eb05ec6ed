package main

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"fire/internal/buildpipeline"
	"fire/internal/observ"
)

// printStageTimings рисует таблицу стадий; заметки фаз драйвера идут в последнюю колонку.
func printStageTimings(out io.Writer, timings buildpipeline.Timings, report observ.Report) {
	if out == nil {
		return
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"stage", "ms", "note"})
	for _, stage := range buildpipeline.Stages {
		if !timings.Has(stage) {
			continue
		}
		table.Append([]string{string(stage), millis(timings.Duration(stage)), report.Note(string(stage))})
	}
	table.SetFooter([]string{"total", millis(timings.Sum(buildpipeline.Stages[:]...)), ""})
	table.Render()
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.1f", float64(d)/float64(time.Millisecond))
}
