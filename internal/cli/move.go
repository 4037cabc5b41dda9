package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"droidbridge/internal/app"
	"droidbridge/internal/domain"
	appErrors "droidbridge/internal/errors"
	"droidbridge/internal/tui"
)

var moveCmd = &cobra.Command{
	Use:   "move <remote> <local>",
	Short: "Move files off the device: copy, confirm, then delete the source",
	Long: `Enumerates the non-hidden files under the remote directory, copies them
to the local directory, and only after an explicit confirmation deletes the
successfully copied files from the device. Declining keeps the copies and
leaves the device untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		bridge, _, err := newBridge(cmd)
		if err != nil {
			return err
		}
		engine := &app.TransferEngine{Bridge: bridge, Log: logger}

		var job *domain.MoveJob
		err = tui.Run("Copying from device", func(report app.ProgressFunc) error {
			engine.OnProgress = report
			var stageErr error
			job, stageErr = engine.StageMove(ctx, args[0], args[1])
			return stageErr
		})
		if err != nil {
			return err
		}

		printer.PrintMovePlan(job)
		if job.Empty() {
			return nil
		}

		confirmed, err := confirmDeletion(job.CopiedCount())
		if err != nil {
			return err
		}
		if !confirmed {
			printer.PrintMoveAborted(job)
			return nil
		}

		report, err := engine.CommitMove(ctx, job)
		if err != nil {
			return err
		}
		if report.Warning != nil {
			fmt.Fprintln(os.Stderr, appErrors.UserMessage(report.Warning))
		}
		printer.PrintMoveReport(job, report)
		return nil
	},
}

func confirmDeletion(count int) (bool, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("Delete the %d copied file(s) from the device? [y/N]: ", count)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
