package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/etnz/finance"
	"github.com/etnz/finance/docs"
	"github.com/etnz/finance/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user keeps a personal ledger of income (positive amounts) and expenses
			(negative amounts). Devise a plan of questions to ask the experts and come up
			with the best response to the user's request. Answer in markdown.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper returns the expert in charge of reading the ledger.
func NewBookkeeper(ledger *finance.Ledger) *Expert {
	lib := BookkeeperFunctions(ledger)
	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. It reads the user's ledger of transactions.
		Ask the Bookkeeper for the balance, the list of transactions, or any figure
		that can be computed from them.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's ledger.
				Use the Tools to read the balance and the transactions. Every transaction has
				an ID, an amount (negative for expenses), a date, a description and a currency.
				The balance is the plain sum of the amounts, whatever their currency.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// BookkeeperFunctions returns the functions that read ledger.
func BookkeeperFunctions(ledger *finance.Ledger) []Function {
	return []Function{balanceFunc(ledger), transactionsFunc(ledger)}
}

func balanceFunc(ledger *finance.Ledger) *Func {
	const name = "Balance"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Balance returns the sum of all transaction amounts, labelled with the current currency.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The balance in markdown.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, renderer.BalanceMarkdown(ledger.BalanceMoney()))
		},
	}
}

func transactionsFunc(ledger *finance.Ledger) *Func {
	const name = "Transactions"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Transactions lists the transactions of the ledger in the order they were recorded.

			Without a query it returns a markdown table. With a query it returns the JSON result
			of the JSONPath query on the array of transactions. Each transaction is an object with
			the keys id, amount (a number), date, description and currency.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {
						Type: genai.TypeString,
						Description: `An optional JSONPath query, e.g. "$[?(@.amount < 0)]" for the expenses.
						Dates are strings in the format below, compare them as strings only for equality.

						` + must(docs.GetTopic("dates")),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of transactions, or the JSON result of the query.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			query, err := stringArg(args, "query")
			if err != nil {
				return errorResponse(id, name, err)
			}
			if query == "" {
				return outputResponse(id, name, renderer.TransactionsMarkdown(ledger.Transactions()))
			}
			result, err := ledger.Query(query)
			if err != nil {
				return errorResponse(id, name, err)
			}
			out, err := json.Marshal(result)
			if err != nil {
				return errorResponse(id, name, fmt.Errorf("could not marshal query result: %w", err))
			}
			return outputResponse(id, name, string(out))
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
