package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/estibas-api/internal/domain/entity"
)

func newMonthCommand() *cobra.Command {
	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Vistas mensuales del libro",
	}
	monthCmd.AddCommand(newMonthSummaryCommand())
	monthCmd.AddCommand(newMonthCalendarCommand())
	return monthCmd
}

func newMonthSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <año> <mes>",
		Short: "Totales autoritativos del mes (materializa todos los días)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonth(args)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			summary, err := a.uc.MonthSummary(cmd.Context(), year, month)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(entity.PalletTypes()))
			for _, t := range entity.PalletTypes() {
				rows = append(rows, []string{
					string(t),
					strconv.Itoa(summary.FirstDayStocks[t]),
					strconv.Itoa(summary.LastDayStocks[t]),
					strconv.Itoa(summary.TotalUsed[t]),
					strconv.Itoa(summary.TotalProduced[t]),
					strconv.Itoa(summary.NetBalance[t]),
				})
			}
			cmd.Printf("resumen %04d-%02d (%d días, %d con alertas)\n",
				summary.Year, summary.Month, summary.TotalDays, summary.DaysWithAlerts)
			cmd.Println(renderTable(
				[]string{"clase", "stock día 1", "stock final", "usadas", "producidas", "balance"},
				rows, 2, 3, 4, 5, 6,
			))
			return nil
		},
	}
}

func newMonthCalendarCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar <año> <mes>",
		Short: "Estado por día del mes (solo lectura, no materializa nada)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonth(args)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			calendar, err := a.uc.Calendar(cmd.Context(), year, month)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(calendar.Days))
			for _, d := range calendar.Days {
				alert := ""
				if d.HasAlerts {
					alert = "⚠"
				}
				rows = append(rows, []string{d.Date, d.Status, alert})
			}
			cmd.Println(renderTable([]string{"fecha", "estado", "alerta"}, rows))
			return nil
		},
	}
}

func parseYearMonth(args []string) (int, int, error) {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("año inválido %q", args[0])
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("mes inválido %q", args[1])
	}
	return year, month, nil
}
