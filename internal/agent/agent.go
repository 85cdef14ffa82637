package agent

import (
	"context"

	"codeberg.org/codegen/server/internal/llm"
	"codeberg.org/codegen/server/internal/logger"
)

func New(completer llm.Completer, historyWriter HistoryWriter) *Agent {
	return &Agent{
		completer: completer,
		history:   historyWriter,
	}
}

// model identifier requests are sent with
func (a *Agent) Model() string {
	return a.completer.Model()
}

// asks the gateway for code, interprets the reply and records the raw exchange.
// errors from the completer are returned as-is; a failed history write is logged
// and does not affect the response
func (a *Agent) Generate(ctx context.Context, prompt string) (*GenerateResponse, error) {
	// the gateway call and the history write finish even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	raw, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	response := Interpret(raw)

	record, err := a.history.Create(ctx, prompt, raw)
	if err != nil {
		logger.ErrorErr(err, "failed to save history",
			"prompt_length", len(prompt),
			"response_length", len(raw),
		)
	} else {
		logger.Debug("history saved", "history_id", record.ID)
	}

	return &response, nil
}
