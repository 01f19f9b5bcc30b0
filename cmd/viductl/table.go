package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderHistory prints the session's jobs, most recent first.
func (s *session) renderHistory() {
	history := s.tracker.History()
	if len(history) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"TASK", "KIND", "STATUS", "MODEL", "DUR", "RESULT"})
	for _, j := range history {
		result := j.Message
		if j.Result != nil {
			result = j.Result.URL
		}
		duration := ""
		if j.Request.Duration > 0 {
			duration = fmt.Sprintf("%ds", j.Request.Duration)
		}
		tw.AppendRow(table.Row{j.TaskID, string(j.Kind), string(j.Status), j.Request.Model, duration, result})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	fmt.Println(tw.Render())
}
