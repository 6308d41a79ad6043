package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent calculations",
	Long: `Lists the saved calculations, newest first. Numbers in the listing are the
indexes accepted by "history rm".`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved calculation",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm INDEX",
	Short: "Remove one calculation by its listed number",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRm,
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyRmCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	_, store, slot, err := openHistory()
	if err != nil {
		return err
	}
	defer slot.Close()

	out := cmd.OutOrStdout()
	entries := store.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No calculations yet.")
		return nil
	}
	for i, e := range entries {
		fmt.Fprintf(out, "%2d. %s = %s  (%s)\n", i+1, e.Input, e.Result.String(), e.Timestamp)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	_, store, slot, err := openHistory()
	if err != nil {
		return err
	}
	defer slot.Close()

	n := store.Len()
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d calculation(s).\n", n)
	return nil
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	_, store, slot, err := openHistory()
	if err != nil {
		return err
	}
	defer slot.Close()

	entry, ok := store.At(n - 1)
	if !ok {
		return fmt.Errorf("no calculation numbered %d (history has %d)", n, store.Len())
	}
	if err := store.Remove(n - 1); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s = %s\n", entry.Input, entry.Result.String())
	return nil
}
