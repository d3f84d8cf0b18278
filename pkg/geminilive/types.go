package geminilive

import "github.com/aaron-wade/gemlive/pkg/encoding"

// Models supported by the Live API.
const (
	// ModelGemini20FlashExp is the experimental Gemini 2.0 Flash model.
	ModelGemini20FlashExp = "models/gemini-2.0-flash-exp"
	// ModelGeminiLive25Flash is the Gemini 2.5 Flash live model.
	ModelGeminiLive25Flash = "models/gemini-live-2.5-flash"
)

// Response modalities.
const (
	ModalityText  = "TEXT"
	ModalityAudio = "AUDIO"
)

// Prebuilt voice names for audio output.
const (
	VoiceAoede  = "Aoede"
	VoiceCharon = "Charon"
	VoiceFenrir = "Fenrir"
	VoiceKore   = "Kore"
	VoicePuck   = "Puck"
)

// Content roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// LiveConfig is the session configuration, sent verbatim as the setup
// envelope immediately after the socket opens. It is immutable for the
// lifetime of a connection.
type LiveConfig struct {
	// Model is the model resource name, e.g. "models/gemini-2.0-flash-exp".
	Model string `json:"model"`

	// GenerationConfig holds sampling and output parameters.
	GenerationConfig *GenerationConfig `json:"generationConfig,omitzero"`

	// SystemInstruction is the optional system prompt content.
	SystemInstruction *Content `json:"systemInstruction,omitzero"`

	// Tools declares the functions and built-in tools available to the model.
	Tools []*Tool `json:"tools,omitzero"`
}

// GenerationConfig holds generation parameters for the session.
type GenerationConfig struct {
	CandidateCount   int      `json:"candidateCount,omitzero"`
	MaxOutputTokens  int      `json:"maxOutputTokens,omitzero"`
	Temperature      *float64 `json:"temperature,omitzero"`
	TopP             *float64 `json:"topP,omitzero"`
	TopK             *int     `json:"topK,omitzero"`
	PresencePenalty  *float64 `json:"presencePenalty,omitzero"`
	FrequencyPenalty *float64 `json:"frequencyPenalty,omitzero"`

	// ResponseModalities selects the output modalities ("TEXT", "AUDIO").
	ResponseModalities []string `json:"responseModalities,omitzero"`

	// SpeechConfig selects the output voice for audio responses.
	SpeechConfig *SpeechConfig `json:"speechConfig,omitzero"`
}

// SpeechConfig configures speech output.
type SpeechConfig struct {
	VoiceConfig *VoiceConfig `json:"voiceConfig,omitzero"`
}

// VoiceConfig selects a voice.
type VoiceConfig struct {
	PrebuiltVoiceConfig *PrebuiltVoiceConfig `json:"prebuiltVoiceConfig,omitzero"`
}

// PrebuiltVoiceConfig names one of the prebuilt voices.
type PrebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName,omitzero"`
}

// Content is an ordered sequence of parts attributed to a role.
type Content struct {
	Role  string  `json:"role,omitzero"`
	Parts []*Part `json:"parts,omitzero"`
}

// Part is one unit of content within a turn. Exactly one field is set.
type Part struct {
	Text                string               `json:"text,omitzero"`
	InlineData          *Blob                `json:"inlineData,omitzero"`
	ExecutableCode      *ExecutableCode      `json:"executableCode,omitzero"`
	CodeExecutionResult *CodeExecutionResult `json:"codeExecutionResult,omitzero"`
}

// Text returns a text part.
func Text(s string) *Part {
	return &Part{Text: s}
}

// Blob is inline binary data with a MIME type. Data is carried as standard
// base64 in JSON.
type Blob struct {
	MIMEType string                 `json:"mimeType,omitzero"`
	Data     encoding.StdBase64Data `json:"data,omitzero"`
}

// ExecutableCode is code generated by the model for execution.
type ExecutableCode struct {
	Language string `json:"language,omitzero"`
	Code     string `json:"code,omitzero"`
}

// CodeExecutionResult is the outcome of executing model-generated code.
type CodeExecutionResult struct {
	Outcome string `json:"outcome,omitzero"`
	Output  string `json:"output,omitzero"`
}

// Tool declares capabilities available to the model.
type Tool struct {
	FunctionDeclarations []*FunctionDeclaration `json:"functionDeclarations,omitzero"`
	GoogleSearch         *GoogleSearch          `json:"googleSearch,omitzero"`
	CodeExecution        *CodeExecution         `json:"codeExecution,omitzero"`
}

// GoogleSearch enables the built-in search tool.
type GoogleSearch struct{}

// CodeExecution enables the built-in code execution tool.
type CodeExecution struct{}

// FunctionDeclaration declares a callable function.
type FunctionDeclaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitzero"`
	Parameters  *Schema `json:"parameters,omitzero"`
}

// Schema is the wire-format parameter schema for function declarations.
// Types are the API's uppercase names ("OBJECT", "STRING", ...). Use
// SchemaFrom to build one from a jsonschema.Schema.
type Schema struct {
	Type        string             `json:"type,omitzero"`
	Format      string             `json:"format,omitzero"`
	Description string             `json:"description,omitzero"`
	Enum        []string           `json:"enum,omitzero"`
	Items       *Schema            `json:"items,omitzero"`
	Properties  map[string]*Schema `json:"properties,omitzero"`
	Required    []string           `json:"required,omitzero"`
}

// FunctionCall is a server-initiated request to invoke a declared function.
type FunctionCall struct {
	// ID correlates the call with its FunctionResponse.
	ID   string         `json:"id,omitzero"`
	Name string         `json:"name,omitzero"`
	Args map[string]any `json:"args,omitzero"`
}

// ToolCall carries the function calls requested in one server frame.
type ToolCall struct {
	FunctionCalls []*FunctionCall `json:"functionCalls,omitzero"`
}

// ToolCallCancellation lists ids of previously issued, not-yet-answered
// calls whose results should be discarded.
type ToolCallCancellation struct {
	IDs []string `json:"ids,omitzero"`
}

// FunctionResponse is the client's answer to one FunctionCall.
type FunctionResponse struct {
	ID       string         `json:"id,omitzero"`
	Name     string         `json:"name,omitzero"`
	Response map[string]any `json:"response,omitzero"`
}

// ToolResponse carries function responses back to the server.
type ToolResponse struct {
	FunctionResponses []*FunctionResponse `json:"functionResponses,omitzero"`
}
