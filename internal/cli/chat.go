package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/rcliao/sukoon/internal/conversation"
	"github.com/rcliao/sukoon/internal/logger"
	"github.com/rcliao/sukoon/internal/prompts"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Long: "Start an interactive conversation. Lines starting with / are commands: " +
			"/mood <key>, /moods, /reset, /state, /exit.",
		Args: cobra.NoArgs,
		Run:  runChat,
	}

	cmd.Flags().StringP("mood", "m", "", "Start with this mood selected")
	cmd.Flags().Bool("plain", false, "Disable markdown rendering and colors")

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	mood, _ := cmd.Flags().GetString("mood")
	plain, _ := cmd.Flags().GetBool("plain")

	cfg := loadConfig()
	rt, err := newRuntime(cmd.Context(), cfg)
	if err != nil {
		exitErr("start", err)
	}
	defer rt.Close()

	c := &chat{
		ctx:     cmd.Context(),
		engine:  rt.engine,
		session: rt.engine.NewSession(),
		ui:      newRenderer(plain),
	}
	logger.Info("chat started", "session_id", c.session.ID, "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)

	// No history file: conversations stay out of the filesystem.
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          c.ui.prompt("you> "),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		exitErr("terminal", err)
	}
	defer rl.Close()

	out := rl.Stdout()
	fmt.Fprintln(out, c.ui.markdown(prompts.Disclaimer))
	if mood != "" {
		fmt.Fprintln(out, c.selectMood(mood))
	} else {
		fmt.Fprintln(out, c.moodMenu())
	}

	c.run(rl, out)
	logger.Info("chat ended", "session_id", c.session.ID)
}

// lineReader yields one raw input line per call, io.EOF at the end and
// readline.ErrInterrupt on Ctrl-C.
type lineReader interface {
	Readline() (string, error)
}

type chat struct {
	ctx     context.Context
	engine  *conversation.Engine
	session *conversation.Session
	ui      *renderer
}

// run feeds lines to handle until EOF, /exit, or Ctrl-C on an empty line.
// Lines are passed through verbatim; apostrophes and quotes are message text.
func (c *chat) run(in lineReader, out io.Writer) {
	for {
		line, err := in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return
			}
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Warn("read input", "error", err)
			}
			return
		}
		if c.handle(line, out) {
			return
		}
	}
}

// handle processes one input line and reports whether the chat should end.
func (c *chat) handle(line string, out io.Writer) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	name, arg, ok := parseSlashCommand(input)
	if !ok {
		fmt.Fprintln(out, c.reply(input))
		return false
	}

	switch name {
	case "mood":
		if arg == "" {
			fmt.Fprintln(out, c.moodMenu())
			return false
		}
		fmt.Fprintln(out, c.selectMood(arg))
	case "moods":
		fmt.Fprintln(out, c.moodMenu())
	case "reset":
		c.session.ResetSession()
		fmt.Fprintln(out, c.ui.notice("Conversation cleared."))
		fmt.Fprintln(out, c.moodMenu())
	case "state":
		fmt.Fprintln(out, c.ui.dim(formatState(c.session.Snapshot())))
	case "exit", "quit":
		return true
	default:
		fmt.Fprintln(out, c.ui.notice(fmt.Sprintf("Unknown command /%s. Try /mood, /moods, /reset, /state or /exit.", name)))
	}
	return false
}

func (c *chat) reply(message string) string {
	turn := c.session.Respond(c.ctx, message, "")
	out := c.ui.markdown(turn.Text)
	if c.session.CrisisActive() {
		out += "\n\n" + c.ui.banner(prompts.CrisisBanner)
	}
	return out
}

func (c *chat) selectMood(key string) string {
	starter, err := c.session.SelectMood(key)
	if err != nil {
		return c.ui.notice(err.Error()) + "\n" + c.moodMenu()
	}
	if starter == "" {
		m, _ := prompts.LookupMood(key)
		return c.ui.notice("Mood set to " + m.Label + ".")
	}
	return c.ui.markdown(starter)
}

func (c *chat) moodMenu() string {
	var b strings.Builder
	b.WriteString("How are you feeling? Pick a mood with /mood <key>, or just start typing.\n")
	for _, m := range c.engine.ListMoods() {
		fmt.Fprintf(&b, "  %-13s %s  %s\n", m.Key, m.Label, c.ui.dim(m.Description))
	}
	return strings.TrimRight(b.String(), "\n")
}

// parseSlashCommand splits "/name arg..." into its parts. ok is false for
// ordinary messages.
func parseSlashCommand(input string) (name, arg string, ok bool) {
	if !strings.HasPrefix(input, "/") || len(input) == 1 {
		return "", "", false
	}
	fields := strings.Fields(input[1:])
	if len(fields) == 0 {
		return "", "", false
	}
	return strings.ToLower(fields[0]), strings.Join(fields[1:], " "), true
}

func formatState(st conversation.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "session:  %s\n", st.ID)
	fmt.Fprintf(&b, "phase:    %s\n", st.Phase)
	if st.Mood != "" {
		fmt.Fprintf(&b, "mood:     %s\n", st.Mood)
	}
	fmt.Fprintf(&b, "turns:    %d\n", len(st.History)/2)
	if st.EmotionalMemory != "" {
		fmt.Fprintf(&b, "memory:   %s\n", st.EmotionalMemory)
	}
	if len(st.Themes) > 0 {
		fmt.Fprintf(&b, "themes:   %s\n", strings.Join(st.Themes, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
