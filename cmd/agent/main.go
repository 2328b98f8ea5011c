package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/alphahuman/memtools/internal/provider"
	"github.com/alphahuman/memtools/internal/runner"
	"github.com/alphahuman/memtools/internal/transcript"
	"github.com/alphahuman/memtools/tools"
)

func main() {
	// Basic env check (SDK also reads API key)
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		fmt.Println("Missing ANTHROPIC_API_KEY; export it before running.")
		os.Exit(1)
	}

	// Memory toolset from ALPHAHUMAN_API_KEY / ALPHAHUMAN_BASE_URL
	toolset, err := tools.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Load prior conversation if exists
	persistPath := "conversation.json"
	persisted, err := transcript.Load(persistPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load persisted conversation: %v\n", err)
	}

	client := provider.NewAnthropicClient()
	r := runner.New(client, toolset.Registry())
	model := provider.DefaultModel

	// Build SDK conversation from persisted messages text
	conv := make([]anthropic.MessageParam, 0, len(persisted))
	for _, m := range persisted {
		if m.Role == "user" {
			conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text)))
		} else {
			conv = append(conv, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Text)))
		}
	}

	// Set up graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Chat with Claude about your memory (Ctrl-C to quit)")

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

outer:
	for {
		fmt.Print("[94mYou[0m: ")
		var (
			user string
			ok   bool
		)
		select {
		case <-ctx.Done():
			break outer
		case user, ok = <-inputCh:
			if !ok {
				break outer
			}
		}
		conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(user)))

		// Track assistant visible text to persist after the turn
		var lastAssistantText string
		for {
			msg, toolResults, err := r.RunOneStep(ctx, model, conv)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				break
			}
			conv = append(conv, msg.ToParam())
			// Collect assistant text blocks from this message
			for _, b := range msg.Content {
				if tb, ok := b.AsAny().(anthropic.TextBlock); ok {
					if tb.Text != "" {
						if lastAssistantText == "" {
							lastAssistantText = tb.Text
						} else {
							lastAssistantText += "\n" + tb.Text
						}
					}
				}
			}
			if len(toolResults) == 0 {
				break // done with assistant turn
			}
			// Provide tool results as a user message back to the model
			conv = append(conv, anthropic.NewUserMessage(toolResults...))
		}

		// Persist minimal text-only transcript (user + assistant)
		persisted = append(persisted, transcript.Message{Role: "user", Text: user})
		if strings.TrimSpace(lastAssistantText) != "" {
			persisted = append(persisted, transcript.Message{Role: "assistant", Text: lastAssistantText})
		}
		if err := transcript.Save(persistPath, persisted); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save conversation: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: stdin read error: %v\n", err)
	}
}
