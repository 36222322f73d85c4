package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/sukoon/internal/prompts"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Send one message and print the reply",
		Long:  "Send one message through the full pipeline in a fresh session. With -f json the whole turn is printed.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAsk,
	}

	cmd.Flags().StringP("mood", "m", "", "Mood to apply before sending")

	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) {
	mood, _ := cmd.Flags().GetString("mood")
	message := strings.Join(args, " ")

	rt, err := newRuntime(cmd.Context(), loadConfig())
	if err != nil {
		exitErr("start", err)
	}
	defer rt.Close()

	sess := rt.engine.NewSession()
	if mood != "" {
		if _, err := sess.SelectMood(mood); err != nil {
			exitErr("mood", err)
		}
	}

	turn := sess.Respond(cmd.Context(), message, "")
	if formatFlag == "json" {
		printJSON(turn)
		return
	}
	fmt.Println(turn.Text)
	if sess.CrisisActive() {
		fmt.Println()
		fmt.Println(prompts.CrisisBanner)
	}
}
