package commands

import (
	"fmt"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/aaron-wade/gemlive/pkg/cli"
	"github.com/aaron-wade/gemlive/pkg/geminilive"
)

var generateModel string

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "One-shot text generation",
	Long: `Generate a single text response without a live session.

Uses the plain HTTP generate API rather than the WebSocket transport,
which is cheaper for one-off prompts.

Examples:
  gemlive generate "explain websockets in one paragraph"
  gemlive generate --model gemini-2.0-flash-exp "hello" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateModel, "model", "", "model name (default from context)")
}

type generateResult struct {
	Model string `json:"model" yaml:"model"`
	Text  string `json:"text" yaml:"text"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cliCtx, err := getContext()
	if err != nil {
		return err
	}

	model := generateModel
	if model == "" {
		model = cliCtx.Model
	}
	if model == "" {
		model = geminilive.ModelGemini20FlashExp
	}
	// the generate API takes bare model names
	model = strings.TrimPrefix(model, "models/")
	cli.PrintVerbose(verbose, "generating with model %s", model)

	ctx := cmd.Context()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cliCtx.APIKey})
	if err != nil {
		return fmt.Errorf("genai client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, model, []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: args[0]}}},
	}, nil)
	if err != nil {
		if ae, ok := apierror.FromError(err); ok {
			return fmt.Errorf("generate failed (%s): %s", ae.GRPCStatus().Code(), ae.Reason())
		}
		return fmt.Errorf("generate: %w", err)
	}

	var sb strings.Builder
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
	}

	return outputResult(generateResult{Model: model, Text: sb.String()}, outputFile, outputJSON)
}
