package service

import (
	"context"
	"log"

	"github.com/sangkips/bizledger-api/internal/domain/repository"
	"github.com/sangkips/bizledger-api/pkg/ai"
	"github.com/sangkips/bizledger-api/pkg/pagination"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// assistantFallback is returned when the external assistant is unreachable
const assistantFallback = "The assistant is unavailable right now. Please try again in a moment."

// AssistantService wraps the external assistant capabilities with the current
// inventory as context. Every call degrades to a neutral fallback on failure;
// assistant errors never block an operation.
type AssistantService struct {
	client   *ai.Client
	itemRepo repository.ItemRepository
}

// NewAssistantService creates a new assistant service
func NewAssistantService(client *ai.Client, itemRepo repository.ItemRepository) *AssistantService {
	return &AssistantService{client: client, itemRepo: itemRepo}
}

// AnalyzeImage submits a product photo for recognition. On failure it returns
// an empty analysis so the caller can fall back to manual entry.
func (s *AssistantService) AnalyzeImage(ctx context.Context, image []byte) *ai.ImageAnalysis {
	analysis, err := s.client.AnalyzeImage(ctx, image)
	if err != nil {
		log.Printf("assistant: image analysis failed: %v", err)
		return &ai.ImageAnalysis{}
	}
	return analysis
}

// Chat answers a free-text question with the inventory snapshot as context
func (s *AssistantService) Chat(ctx context.Context, message string) string {
	inventory, err := s.inventorySnapshot(ctx)
	if err != nil {
		log.Printf("assistant: inventory snapshot failed: %v", err)
		return assistantFallback
	}

	response, err := s.client.Chat(ctx, message, inventory)
	if err != nil {
		log.Printf("assistant: chat failed: %v", err)
		return assistantFallback
	}
	return response
}

// SuggestRecipes asks for recipe ideas based on the current inventory. On
// failure it returns an empty list.
func (s *AssistantService) SuggestRecipes(ctx context.Context) []ai.Recipe {
	inventory, err := s.inventorySnapshot(ctx)
	if err != nil {
		log.Printf("assistant: inventory snapshot failed: %v", err)
		return []ai.Recipe{}
	}

	recipes, err := s.client.SuggestRecipes(ctx, inventory)
	if err != nil {
		log.Printf("assistant: recipe suggestion failed: %v", err)
		return []ai.Recipe{}
	}
	return recipes
}

func (s *AssistantService) inventorySnapshot(ctx context.Context) ([]ai.InventoryLine, error) {
	params := &repository.ItemFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 100},
	}
	items, _, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	lines := make([]ai.InventoryLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, ai.InventoryLine{
			Name:     item.Name,
			Category: item.Category,
			Quantity: item.Quantity,
			Price:    utils.FromCents(item.EffectiveSellingPrice()),
		})
	}
	return lines, nil
}
