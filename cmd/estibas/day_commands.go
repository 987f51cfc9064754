package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/estibas-api/internal/application/dto"
	"github.com/jhoicas/estibas-api/internal/domain/entity"
)

func newDayCommand() *cobra.Command {
	dayCmd := &cobra.Command{
		Use:   "day",
		Short: "Operaciones sobre un día del libro",
	}
	dayCmd.AddCommand(newDayGetCommand())
	dayCmd.AddCommand(newDayTodayCommand())
	dayCmd.AddCommand(newDaySaveCommand())
	dayCmd.AddCommand(newDayCloseCommand())
	dayCmd.AddCommand(newDayCorrectCommand())
	return dayCmd
}

func newDayGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <fecha>",
		Short: "Muestra (y materializa si hace falta) el día dado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			day, err := a.uc.GetDay(cmd.Context(), date)
			if err != nil {
				return err
			}
			alerts, err := a.uc.Alerts(cmd.Context(), day)
			if err != nil {
				return err
			}
			printDay(cmd, day, alerts)
			return nil
		},
	}
}

func newDayTodayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Muestra el día de hoy con sus alertas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			day, alerts, err := a.uc.GetToday(cmd.Context())
			if err != nil {
				return err
			}
			printDay(cmd, day, alerts)
			return nil
		},
	}
}

func newDaySaveCommand() *cobra.Command {
	var entryFlags []string
	cmd := &cobra.Command{
		Use:   "save <fecha> --entry CLASE=USADAS:MATINAL ...",
		Short: "Guarda las ediciones del encargado sobre un día abierto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			edits := make([]dto.SaveEntryRequest, 0, len(entryFlags))
			for _, raw := range entryFlags {
				edit, err := parseEntryFlag(raw)
				if err != nil {
					return err
				}
				edits = append(edits, edit)
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			day, err := a.uc.SaveDay(cmd.Context(), date, edits)
			if err != nil {
				return err
			}
			alerts, err := a.uc.Alerts(cmd.Context(), day)
			if err != nil {
				return err
			}
			printDay(cmd, day, alerts)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&entryFlags, "entry", nil, "edición por clase, formato CLASE=USADAS:MATINAL (ej. P2400=5:20)")
	_ = cmd.MarkFlagRequired("entry")
	return cmd
}

func newDayCloseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close <fecha>",
		Short: "Cierra el día (irreversible)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			day, err := a.uc.CloseDay(cmd.Context(), date)
			if err != nil {
				return err
			}
			cmd.Printf("día %s cerrado\n", day.Date.Format("2006-01-02"))
			return nil
		},
	}
}

func newDayCorrectCommand() *cobra.Command {
	var morning int
	var note string
	cmd := &cobra.Command{
		Use:   "correct <fecha> <clase>",
		Short: "Corrige el stock matinal de una clase con nota de auditoría",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			entry, err := a.uc.CorrectMorningStock(cmd.Context(), date, dto.CorrectMorningStockRequest{
				Type:         args[1],
				MorningStock: morning,
				Note:         note,
			})
			if err != nil {
				return err
			}
			cmd.Printf("%s corregido: matinal=%d producido=%d\n", entry.Type, entry.MorningStock, entry.Produced)
			return nil
		},
	}
	cmd.Flags().IntVar(&morning, "morning", 0, "nuevo stock matinal")
	cmd.Flags().StringVar(&note, "note", "", "nota de la corrección (mínimo 3 caracteres)")
	_ = cmd.MarkFlagRequired("morning")
	_ = cmd.MarkFlagRequired("note")
	return cmd
}

func printDay(cmd *cobra.Command, day *entity.PalletDay, alerts []entity.Alert) {
	cmd.Printf("día %s (%s)\n", day.Date.Format("2006-01-02"), strings.ToLower(day.Status))
	rows := make([][]string, 0, len(day.Entries))
	for _, e := range day.Entries {
		corrected := ""
		if e.MorningCorrected {
			corrected = "sí"
		}
		rows = append(rows, []string{
			string(e.Type),
			strconv.Itoa(e.MorningStock),
			strconv.Itoa(e.Used),
			strconv.Itoa(e.Produced),
			strconv.Itoa(e.PreviousMorningStock),
			corrected,
		})
	}
	cmd.Println(renderTable(
		[]string{"clase", "matinal", "usadas", "producidas", "matinal anterior", "corregido"},
		rows, 2, 3, 4, 5,
	))
	for _, alert := range alerts {
		cmd.Printf("ALERTA [%s] %s\n", alert.Severity, alert.Message)
	}
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q (formato AAAA-MM-DD)", s)
	}
	return date, nil
}

// parseEntryFlag interpreta CLASE=USADAS:MATINAL (ej. P2400=5:20).
func parseEntryFlag(raw string) (dto.SaveEntryRequest, error) {
	var edit dto.SaveEntryRequest
	typ, values, ok := strings.Cut(raw, "=")
	if !ok {
		return edit, fmt.Errorf("entrada inválida %q (formato CLASE=USADAS:MATINAL)", raw)
	}
	usedStr, morningStr, ok := strings.Cut(values, ":")
	if !ok {
		return edit, fmt.Errorf("entrada inválida %q (formato CLASE=USADAS:MATINAL)", raw)
	}
	used, err := strconv.Atoi(usedStr)
	if err != nil {
		return edit, fmt.Errorf("usadas inválidas en %q: %w", raw, err)
	}
	morning, err := strconv.Atoi(morningStr)
	if err != nil {
		return edit, fmt.Errorf("stock matinal inválido en %q: %w", raw, err)
	}
	return dto.SaveEntryRequest{Type: typ, Used: used, MorningStock: morning}, nil
}
