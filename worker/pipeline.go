package worker

import "github.com/hupe1980/grocerymesh/core"

// The pipeline stage workers below mirror the externally owned agents of the
// grocery system. Their bodies are placeholders: each validates its input
// contract and answers with a fixed structure, or delegates to a configured
// model. The real extraction, estimation and recommendation logic is
// supplied by a separately owned implementation of core.Worker.

// NewReceiptInterpreter constructs the receipt interpretation stage.
func NewReceiptInterpreter(optFns ...func(o *Options)) *StageWorker {
	return newStageWorker(
		"receipt_interpreter",
		Profile{
			Role: "Receipt Markdown Interpreter",
			Goal: "Accurately extract items, their counts, and weights with units from a given " +
				"receipt in markdown format.",
			Backstory: "Your mission is to meticulously extract item names, quantities and weights " +
				"from receipt markdown files; the grocery tracker depends on your structured output.",
			Personality: "Diligent, detail-oriented, and efficient.",
		},
		[]string{"receipt_markdown", "today"},
		func(input core.Payload) core.Payload {
			return core.Payload{
				"items": []any{
					map[string]any{"item_name": "Placeholder Item", "count": 1, "unit": "pcs"},
				},
				"date_of_purchase": input["today"],
			}
		},
		optFns...,
	)
}

// NewExpirationEstimator constructs the expiration date estimation stage.
func NewExpirationEstimator(optFns ...func(o *Options)) *StageWorker {
	return newStageWorker(
		"expiration_date_estimator",
		Profile{
			Role: "Expiration Date Estimation Specialist",
			Goal: "Accurately estimate the expiration dates of items extracted from the receipt, " +
				"adding typical refrigerated shelf life to the purchase date.",
			Backstory: "You make sure the household's groceries are consumed before expiration by " +
				"estimating how long each item lasts when stored properly.",
			Personality: "Meticulous, resourceful, and reliable.",
		},
		[]string{"items", "date_of_purchase"},
		func(input core.Payload) core.Payload {
			items, _ := input["items"].([]any)
			estimated := make([]any, 0, len(items))
			for _, it := range items {
				m, ok := it.(map[string]any)
				if !ok {
					continue
				}
				estimated = append(estimated, map[string]any{
					"item_name":       m["item_name"],
					"count":           m["count"],
					"unit":            m["unit"],
					"expiration_date": "2024-11-30",
				})
			}
			return core.Payload{"items": estimated}
		},
		optFns...,
	)
}

// NewGroceryTracker constructs the inventory tracking stage.
func NewGroceryTracker(optFns ...func(o *Options)) *StageWorker {
	return newStageWorker(
		"grocery_tracker",
		Profile{
			Role: "Grocery Inventory Tracker",
			Goal: "Accurately track the remaining groceries based on user consumption input and " +
				"provide an updated list with corresponding expiration dates.",
			Backstory: "You understand what the user has consumed, update the inventory list and " +
				"remind them of what's left, helping the household avoid waste.",
			Personality: "Helpful, detail-oriented, and responsive.",
		},
		[]string{"items", "consumed_items"},
		func(input core.Payload) core.Payload {
			items, _ := input["items"].([]any)
			updated := make([]any, 0, len(items))
			for _, it := range items {
				m, ok := it.(map[string]any)
				if !ok {
					continue
				}
				updated = append(updated, map[string]any{
					"item_name":       m["item_name"],
					"count":           m["count"],
					"unit":            m["unit"],
					"expiration_date": m["expiration_date"],
				})
			}
			return core.Payload{"items": updated}
		},
		optFns...,
	)
}

// NewRecipeRecommender constructs the recipe recommendation stage.
func NewRecipeRecommender(optFns ...func(o *Options)) *StageWorker {
	return newStageWorker(
		"recipe_recommender",
		Profile{
			Role: "Grocery Recipe Recommendation Specialist",
			Goal: "Provide recipe recommendations using the remaining groceries, avoiding items " +
				"with a count of 0 and suggesting restocking when ingredients are insufficient.",
			Backstory: "You help the household make the most out of their remaining groceries with " +
				"easy recipes that maximize available ingredients and minimize waste.",
			Personality: "Creative, resourceful, and efficient.",
		},
		[]string{"items"},
		func(core.Payload) core.Payload {
			return core.Payload{
				"recipes": []any{
					map[string]any{
						"recipe_name": "Placeholder Recipe",
						"ingredients": []any{
							map[string]any{"item_name": "Placeholder Item", "quantity": "1", "unit": "pcs"},
						},
						"steps":  []any{"Step 1: Do something", "Step 2: Do something else"},
						"source": "https://www.example.com",
					},
				},
				"restock_recommendations": []any{
					map[string]any{"item_name": "Placeholder Item", "quantity_needed": 1, "unit": "pcs"},
				},
			}
		},
		optFns...,
	)
}
