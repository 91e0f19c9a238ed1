package interview

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// systemPrompt steers the interviewer that profiles founders and investors
// ahead of a match.
const systemPrompt = `You are an interviewer for a platform that matches startup founders with investors.
Ask deep, situation- and interest-based questions to understand what the person values in a company, a team, and a partnership, and ask them to answer with a concrete example or story.
Use their previous answers to ask more meaningful and deep follow-up questions, provoking a thoughtful response.
Ask questions that make them reveal what their values are.`

// Turn is a single exchange in the interview. Roles are "user" and
// "assistant".
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client produces interview questions. It keeps no conversation state; the
// caller carries the history on every call.
type Client struct {
	api   openai.Client
	model string
}

func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_KEY environment variable is not set")
	}
	if model == "" {
		return nil, fmt.Errorf("OPENAI_MODEL environment variable is not set")
	}

	return &Client{
		api:   openai.NewClient(option.WithAPIKey(apiKey)),
		model: model,
	}, nil
}

// NextQuestion asks the model for the interviewer's next question given the
// turns so far and the latest message.
func (c *Client) NextQuestion(ctx context.Context, history []Turn, message string) (string, error) {
	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: buildMessages(history, message),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	reply := completion.Choices[0].Message.Content
	return limitSentences(stripMarkup(reply), 3), nil
}

func buildMessages(history []Turn, message string) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, turn := range history {
		switch turn.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))
	return messages
}

var (
	urlRe    = regexp.MustCompile(`https?://\S+`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
	markupRe = regexp.MustCompile("[*_~`#|\\[\\]()]")
	emojiRe  = regexp.MustCompile(`[\x{1F600}-\x{1F64F}]|[\x{1F300}-\x{1F5FF}]|[\x{1F680}-\x{1F6FF}]|[\x{1F700}-\x{1F77F}]|[\x{1F780}-\x{1F7FF}]|[\x{1F800}-\x{1F8FF}]|[\x{1F900}-\x{1F9FF}]|[\x{1FA00}-\x{1FA6F}]|[\x{1FA70}-\x{1FAFF}]|[\x{2600}-\x{26FF}]|[\x{2700}-\x{27BF}]`)
)

// stripMarkup removes emoji, markdown, URLs and HTML so the question reads
// well as plain text.
func stripMarkup(text string) string {
	text = emojiRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "")
	text = markupRe.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

var sentenceEndRe = regexp.MustCompile(`[.!?]+(\s+|$)`)

// limitSentences keeps at most max sentences so the interviewer asks one
// thing at a time.
func limitSentences(text string, max int) string {
	locs := sentenceEndRe.FindAllStringIndex(text, -1)
	if len(locs) >= max {
		return strings.TrimSpace(text[:locs[max-1][1]])
	}
	return strings.TrimSpace(text)
}
