package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"punchcard/internal/punch"
)

// summaryModel charts today's sessions: one bar per closed session, labelled
// with its start time, plus the running total.
type summaryModel struct {
	width  int
	height int

	state punch.State
	chart barchart.Model
}

func newSummaryModel() summaryModel {
	return summaryModel{
		chart: barchart.New(60, 12),
	}
}

func (s *summaryModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s *summaryModel) setState(st punch.State) {
	s.state = st
	s.buildChart()
}

func (s *summaryModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if s.height > 30 {
		chartHeight = 16
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, sess := range s.state.Sessions {
		if sess.Hours == nil {
			continue
		}
		rows := punch.TableRows([]punch.Session{sess})
		bars = append(bars, barchart.BarData{
			Label: rows[0].Time,
			Values: []barchart.BarValue{{
				Name:  "worked",
				Value: *sess.Hours,
				Style: lipgloss.NewStyle().Foreground(colorPrimary),
			}},
		})
	}

	if len(bars) == 0 {
		bars = []barchart.BarData{{
			Label:  "--",
			Values: []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}},
		}}
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s summaryModel) view() string {
	w := s.width - 4
	if w < 20 {
		w = 20
	}

	header := titleStyle.Render("Today's Summary")

	total := punch.TodayTotalHours(s.state)
	totalLine := fmt.Sprintf("Total worked: %s", highlightStyle.Render(punch.FormatHours(total)))

	open := 0
	for _, sess := range s.state.Sessions {
		if sess.Open() {
			open++
		}
	}
	var openLine string
	if open > 0 {
		openLine = warningStyle.Render(fmt.Sprintf("%d session in progress (not counted)", open))
	}

	var body string
	if len(s.state.Sessions) == 0 {
		body = mutedStyle.Render("No punches recorded today")
	} else {
		body = s.chart.View()
	}

	parts := []string{header, "", body, "", totalLine}
	if openLine != "" {
		parts = append(parts, openLine)
	}

	return panelStyle.Width(w).Render(strings.Join(parts, "\n"))
}
