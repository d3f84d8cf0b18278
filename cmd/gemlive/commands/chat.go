package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"

	"github.com/aaron-wade/gemlive/pkg/cli"
	"github.com/aaron-wade/gemlive/pkg/geminilive"
	"github.com/aaron-wade/gemlive/pkg/logstore"
)

var (
	chatModel    string
	chatVoice    string
	chatSystem   string
	chatSetup    string
	chatAudioOut string
	chatDumpLogs string
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Interactive live session",
	Long: `Start an interactive live session over WebSocket.

Each input line is sent as a completed user turn; model output is
printed as it streams in. With a message argument the session sends it,
waits for the full response and exits.

A get_current_time function is declared so the model can ask for the
local time; tool calls are answered automatically.

Examples:
  gemlive chat
  gemlive chat "what time is it?"
  gemlive chat --voice Aoede --audio-out reply.pcm "read me a poem"
  gemlive chat --setup session.yaml --dump-logs session.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatModel, "model", "", "model resource name (default from context)")
	chatCmd.Flags().StringVar(&chatVoice, "voice", "", "prebuilt voice, switches the session to audio responses")
	chatCmd.Flags().StringVar(&chatSystem, "system", "", "system instruction text")
	chatCmd.Flags().StringVar(&chatSetup, "setup", "", "session config file (YAML or JSON), overrides other session flags")
	chatCmd.Flags().StringVar(&chatAudioOut, "audio-out", "", "file for raw PCM audio responses (bare names go under ~/.gemlive/gemlive/data)")
	chatCmd.Flags().StringVar(&chatDumpLogs, "dump-logs", "", "file for the session log on exit (bare names go under ~/.gemlive/gemlive/logs)")
}

// currentTimeTool is the demo function declared to the model.
var currentTimeTool = &geminilive.FunctionDeclaration{
	Name:        "get_current_time",
	Description: "Returns the current local time.",
	Parameters: geminilive.SchemaFrom(&jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"timezone": {
				Type:        "string",
				Description: "IANA timezone name, defaults to the local timezone",
			},
		},
	}),
}

func runChat(cmd *cobra.Command, args []string) error {
	cliCtx, err := getContext()
	if err != nil {
		return err
	}

	config, err := buildChatConfig(cliCtx)
	if err != nil {
		return err
	}

	styles := cli.NewConsoleStyles(cli.DefaultTheme)
	store := sessionStore

	var opts []geminilive.Option
	if cliCtx.Host != "" {
		opts = append(opts, geminilive.WithHost(cliCtx.Host))
	}
	client := geminilive.NewClient(cliCtx.APIKey, opts...)
	client.OnLog(store.Append)

	var audioOut *os.File
	if chatAudioOut != "" {
		path, err := resolveAudioPath(chatAudioOut)
		if err != nil {
			return fmt.Errorf("failed to resolve audio output: %w", err)
		}
		audioOut, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create audio output: %w", err)
		}
		defer audioOut.Close()
	}

	// turn gating: the REPL waits for turncomplete (or close) before
	// prompting again
	turnDone := make(chan struct{}, 1)
	closed := make(chan struct{})

	client.OnContent(func(sc *geminilive.ServerContent) {
		for _, p := range sc.ModelTurn.Parts {
			switch {
			case p.Text != "":
				fmt.Print(styles.Model.Render(p.Text))
			case p.ExecutableCode != nil:
				fmt.Println(styles.Info.Render("[code] " + p.ExecutableCode.Code))
			case p.CodeExecutionResult != nil:
				fmt.Println(styles.Info.Render("[result] " + p.CodeExecutionResult.Output))
			}
		}
	})
	client.OnAudio(func(data []byte) {
		if audioOut != nil {
			audioOut.Write(data)
			return
		}
		fmt.Println(styles.Info.Render(fmt.Sprintf("[audio %s]", cli.FormatBytes(int64(len(data))))))
	})
	client.OnInterrupted(func() {
		fmt.Println(styles.Info.Render("[interrupted]"))
	})
	client.OnTurnComplete(func() {
		fmt.Println()
		select {
		case turnDone <- struct{}{}:
		default:
		}
	})
	client.OnToolCall(func(tc *geminilive.ToolCall) {
		if err := answerToolCall(client, tc, styles); err != nil {
			cli.PrintError("tool response: %v", err)
		}
	})
	client.OnToolCallCancellation(func(tcc *geminilive.ToolCallCancellation) {
		fmt.Println(styles.Info.Render(fmt.Sprintf("[cancelled %v]", tcc.IDs)))
	})
	client.OnClose(func(reason string) {
		if reason != "" {
			fmt.Println(styles.Error.Render("connection closed: " + reason))
		}
		close(closed)
	})

	if err := client.Connect(cmd.Context(), config); err != nil {
		return err
	}
	defer client.Disconnect()
	defer dumpLogs(store)

	fmt.Println(styles.Banner.Render("gemlive · " + config.Model))

	// single message mode: send, wait for the turn, exit
	if len(args) == 1 {
		start := time.Now()
		if err := client.SendText(args[0]); err != nil {
			return err
		}
		select {
		case <-turnDone:
			printTurnLatency(styles, start)
		case <-closed:
		case <-time.After(2 * time.Minute):
			return fmt.Errorf("timed out waiting for response")
		}
		return nil
	}

	fmt.Println(styles.Info.Render("type a message, /quit to exit"))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(styles.Prompt.Render("> "))
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			return nil
		}

		start := time.Now()
		if err := client.SendText(line); err != nil {
			return err
		}
		select {
		case <-turnDone:
			printTurnLatency(styles, start)
		case <-closed:
			return nil
		}
	}
}

// printTurnLatency reports how long the model turn took, verbose mode only.
func printTurnLatency(styles cli.ConsoleStyles, start time.Time) {
	if !verbose {
		return
	}
	elapsed := cli.FormatDuration(int(time.Since(start).Milliseconds()))
	fmt.Println(styles.Info.Render("[turn " + elapsed + "]"))
}

// buildChatConfig assembles the session config from the context, flags and
// the optional setup file.
func buildChatConfig(cliCtx *cli.Context) (*geminilive.LiveConfig, error) {
	if chatSetup != "" {
		config := &geminilive.LiveConfig{}
		if chatSetup == "-" {
			if err := cli.LoadRequestFromStdin(config); err != nil {
				return nil, err
			}
		} else if err := cli.LoadRequest(chatSetup, config); err != nil {
			return nil, err
		}
		if config.Model == "" {
			return nil, fmt.Errorf("setup file has no model")
		}
		return config, nil
	}

	model := chatModel
	if model == "" {
		model = cliCtx.Model
	}
	if model == "" {
		model = geminilive.ModelGemini20FlashExp
	}

	config := &geminilive.LiveConfig{
		Model: model,
		Tools: []*geminilive.Tool{
			{FunctionDeclarations: []*geminilive.FunctionDeclaration{currentTimeTool}},
		},
	}

	system := chatSystem
	if system == "" {
		system = cliCtx.GetExtra("system_prompt")
	}
	if system != "" {
		config.SystemInstruction = &geminilive.Content{
			Parts: []*geminilive.Part{geminilive.Text(system)},
		}
	}

	voice := chatVoice
	if voice == "" {
		voice = cliCtx.Voice
	}
	if voice != "" {
		config.GenerationConfig = &geminilive.GenerationConfig{
			ResponseModalities: []string{geminilive.ModalityAudio},
			SpeechConfig: &geminilive.SpeechConfig{
				VoiceConfig: &geminilive.VoiceConfig{
					PrebuiltVoiceConfig: &geminilive.PrebuiltVoiceConfig{VoiceName: voice},
				},
			},
		}
	}

	return config, nil
}

// answerToolCall responds to every call in the frame. Only
// get_current_time is known; anything else gets an error response so the
// model can recover.
func answerToolCall(client *geminilive.Client, tc *geminilive.ToolCall, styles cli.ConsoleStyles) error {
	responses := make([]*geminilive.FunctionResponse, 0, len(tc.FunctionCalls))
	for _, fc := range tc.FunctionCalls {
		fmt.Println(styles.Info.Render("[tool] " + fc.Name))
		responses = append(responses, &geminilive.FunctionResponse{
			ID:       fc.ID,
			Name:     fc.Name,
			Response: callFunction(fc),
		})
	}
	return client.SendToolResponse(&geminilive.ToolResponse{FunctionResponses: responses})
}

func callFunction(fc *geminilive.FunctionCall) map[string]any {
	switch fc.Name {
	case "get_current_time":
		now := time.Now()
		if tz, ok := fc.Args["timezone"].(string); ok && tz != "" {
			if loc, err := time.LoadLocation(tz); err == nil {
				now = now.In(loc)
			}
		}
		return map[string]any{"time": now.Format(time.RFC3339)}
	default:
		cli.PrintWarning("model called unknown function %q", fc.Name)
		return map[string]any{"error": "unknown function: " + fc.Name}
	}
}

// resolveAudioPath places bare file names under the app data directory;
// anything with a directory component is used as given.
func resolveAudioPath(name string) (string, error) {
	if filepath.Dir(name) != "." {
		return name, nil
	}
	paths, err := cli.NewPaths(appName)
	if err != nil {
		return "", err
	}
	if err := paths.EnsureDataDir(); err != nil {
		return "", err
	}
	return paths.DataPath(name), nil
}

// resolveLogPath is resolveAudioPath for the log directory.
func resolveLogPath(name string) (string, error) {
	if filepath.Dir(name) != "." {
		return name, nil
	}
	paths, err := cli.NewPaths(appName)
	if err != nil {
		return "", err
	}
	if err := paths.EnsureLogDir(); err != nil {
		return "", err
	}
	return paths.LogPath(name), nil
}

// dumpLogs writes the session log to the --dump-logs file, if set.
func dumpLogs(store *logstore.Store) {
	if chatDumpLogs == "" {
		return
	}
	path, err := resolveLogPath(chatDumpLogs)
	if err != nil {
		cli.PrintError("failed to resolve session log path: %v", err)
		return
	}
	data, err := json.MarshalIndent(store.Entries(), "", "  ")
	if err != nil {
		cli.PrintError("failed to encode session log: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		cli.PrintError("failed to write session log: %v", err)
		return
	}
	cli.PrintInfo("session log written to %s (%d entries)", path, store.Len())
}
