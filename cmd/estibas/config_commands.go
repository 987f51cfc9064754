package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/estibas-api/internal/application/dto"
	"github.com/jhoicas/estibas-api/internal/domain/entity"
)

func newAlertsCommand() *cobra.Command {
	alertsCmd := &cobra.Command{
		Use:   "alerts",
		Short: "Umbrales de alerta por clase",
	}
	alertsCmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Muestra los umbrales configurados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			configs, err := a.uc.GetAlertConfig(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(configs))
			for _, cfg := range configs {
				rows = append(rows, []string{string(cfg.Type), strconv.Itoa(cfg.CriticalThreshold)})
			}
			cmd.Println(renderTable([]string{"clase", "umbral crítico"}, rows, 2))
			return nil
		},
	})
	alertsCmd.AddCommand(&cobra.Command{
		Use:   "set CLASE=UMBRAL ...",
		Short: "Actualiza umbrales (ej. estibas alerts set P2400=15 MALA=5)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := make([]dto.AlertConfigRequest, 0, len(args))
			for _, raw := range args {
				typ, value, err := parsePair(raw)
				if err != nil {
					return err
				}
				reqs = append(reqs, dto.AlertConfigRequest{Type: typ, CriticalThreshold: value})
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			configs, err := a.uc.UpdateAlertConfig(cmd.Context(), reqs)
			if err != nil {
				return err
			}
			cmd.Printf("umbrales actualizados (%d clases)\n", len(configs))
			return nil
		},
	})
	return alertsCmd
}

func newAnchorCommand() *cobra.Command {
	anchorCmd := &cobra.Command{
		Use:   "anchor",
		Short: "Ancla del libro: fecha de inicio y stock inicial",
	}
	anchorCmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Muestra el ancla configurada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			anchor, err := a.uc.GetInitialStock(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("inicio del seguimiento: %s\n", anchor.StartDate)
			rows := make([][]string, 0, len(anchor.Stocks))
			for _, t := range entity.PalletTypes() {
				rows = append(rows, []string{string(t), strconv.Itoa(anchor.Stocks[t])})
			}
			cmd.Println(renderTable([]string{"clase", "stock inicial"}, rows, 2))
			return nil
		},
	})
	anchorCmd.AddCommand(&cobra.Command{
		Use:   "set <fecha-inicio> CLASE=STOCK ...",
		Short: "Reemplaza el ancla (ej. estibas anchor set 2026-02-01 P2400=20)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDate(args[0])
			if err != nil {
				return err
			}
			stocks := make(map[entity.PalletType]int, len(args)-1)
			for _, raw := range args[1:] {
				typ, value, err := parsePair(raw)
				if err != nil {
					return err
				}
				stocks[entity.PalletType(typ)] = value
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			anchor, err := a.uc.SetInitialStock(cmd.Context(), startDate, stocks)
			if err != nil {
				return err
			}
			cmd.Printf("ancla configurada desde %s\n", anchor.StartDate)
			return nil
		},
	})
	return anchorCmd
}

// parsePair interpreta CLASE=VALOR (ej. P2400=15).
func parsePair(raw string) (string, int, error) {
	typ, valueStr, ok := strings.Cut(raw, "=")
	if !ok {
		return "", 0, fmt.Errorf("par inválido %q (formato CLASE=VALOR)", raw)
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return "", 0, fmt.Errorf("valor inválido en %q: %w", raw, err)
	}
	return typ, value, nil
}
