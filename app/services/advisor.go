package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cropconnect/api/pkg/cache"
	"github.com/cropconnect/api/pkg/metrics"
)

// Predictor estimates mandi prices for a crop.
type Predictor interface {
	Predict(ctx context.Context, crop, location, quality string) (*PricePrediction, error)
}

// Chatbot answers free-form farming questions.
type Chatbot interface {
	Reply(ctx context.Context, message string) (*ChatReply, error)
}

// PricePrediction is the advisor's price estimate for a crop.
type PricePrediction struct {
	CropName       string    `json:"cropName"`
	Location       string    `json:"location"`
	Quality        string    `json:"quality"`
	CurrentPrice   float64   `json:"currentPrice"`
	PredictedPrice float64   `json:"predictedPrice"`
	Trend          string    `json:"trend"`
	Confidence     float64   `json:"confidence"`
	Recommendation string    `json:"recommendation"`
	Unit           string    `json:"unit"`
	GeneratedAt    time.Time `json:"generatedAt"`
}

// ChatReply is one advisor chat turn. Suggestions are follow-up prompts
// the client renders as quick-reply chips.
type ChatReply struct {
	Reply       string    `json:"reply"`
	Intent      string    `json:"intent"`
	Suggestions []string  `json:"suggestions"`
	Timestamp   time.Time `json:"timestamp"`
}

// PredictInput is the price-prediction request body.
type PredictInput struct {
	CropName string `json:"cropName" validate:"required"`
	Location string `json:"location"`
	Quality  string `json:"quality"`
}

// ChatInput is the chat request body.
type ChatInput struct {
	Message string `json:"message" validate:"required"`
}

// cropMarket holds the baseline market numbers for a crop. Prices are
// rupees per kg.
type cropMarket struct {
	basePrice  float64
	volatility float64
	trend      float64 // multiplier applied to the current price
}

var marketData = map[string]cropMarket{
	"tomatoes": {basePrice: 45, volatility: 0.15, trend: 1.2},
	"onions":   {basePrice: 28, volatility: 0.20, trend: 1.1},
	"chillies": {basePrice: 80, volatility: 0.25, trend: 1.3},
	"potatoes": {basePrice: 25, volatility: 0.12, trend: 1.0},
	"carrots":  {basePrice: 35, volatility: 0.18, trend: 1.1},
	"spinach":  {basePrice: 40, volatility: 0.22, trend: 1.4},
}

// defaultMarket is used for crops outside the table.
var defaultMarket = cropMarket{basePrice: 30, volatility: 0.15, trend: 1.0}

var locationMultipliers = map[string]float64{
	"maharashtra":   1.10,
	"gujarat":       1.05,
	"karnataka":     1.08,
	"tamil nadu":    1.12,
	"punjab":        0.95,
	"uttar pradesh": 0.92,
}

var qualityMultipliers = map[string]float64{
	"premium":  1.30,
	"grade a":  1.15,
	"grade b":  1.05,
	"standard": 1.00,
}

// AdvisorService is the mock AI advisor. Predictions are derived from the
// static market tables above and cached in Redis when a cache is connected.
type AdvisorService struct {
	cacheTTL time.Duration
}

func NewAdvisor() *AdvisorService {
	return &AdvisorService{cacheTTL: time.Hour}
}

// Predict returns a price estimate for the crop. Same inputs always give
// the same numbers, so results are cacheable by (crop, location, quality).
func (s *AdvisorService) Predict(_ context.Context, crop, location, quality string) (*PricePrediction, error) {
	key := fmt.Sprintf("advisor:price:%s:%s:%s",
		strings.ToLower(crop), strings.ToLower(location), strings.ToLower(quality))

	var cached PricePrediction
	if cache.Get(key, &cached) {
		metrics.PredictionCacheHits.Inc()
		return &cached, nil
	}
	metrics.PredictionCacheMisses.Inc()

	market, ok := marketData[strings.ToLower(crop)]
	if !ok {
		market = defaultMarket
	}
	locMult, ok := locationMultipliers[strings.ToLower(location)]
	if !ok {
		locMult = 1.0
	}
	qualMult, ok := qualityMultipliers[strings.ToLower(quality)]
	if !ok {
		qualMult = 1.0
	}

	current := round2(market.basePrice * locMult * qualMult)
	predicted := round2(current * market.trend)

	p := &PricePrediction{
		CropName:       crop,
		Location:       location,
		Quality:        quality,
		CurrentPrice:   current,
		PredictedPrice: predicted,
		Trend:          trendLabel(market.trend),
		Confidence:     round2(1 - market.volatility),
		Recommendation: recommendation(market.trend),
		Unit:           "INR/kg",
		GeneratedAt:    time.Now().UTC(),
	}

	if cache.Enabled() {
		_ = cache.Set(key, p, s.cacheTTL)
	}
	return p, nil
}

func trendLabel(trend float64) string {
	switch {
	case trend > 1.05:
		return "rising"
	case trend < 0.95:
		return "falling"
	default:
		return "stable"
	}
}

func recommendation(trend float64) string {
	switch {
	case trend > 1.05:
		return "Prices are expected to rise. Consider holding stock for a better rate."
	case trend < 0.95:
		return "Prices are expected to fall. Selling soon is advisable."
	default:
		return "Prices look stable. Sell at your convenience."
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Canned replies per intent. The reply is picked by message length so the
// bot varies its answers while staying deterministic for tests.
var chatReplies = map[string][]string{
	"greeting": {
		"Namaste! I am your farming advisor. Ask me about crop prices, market demand or selling tips.",
		"Hello! How can I help with your farm today?",
	},
	"pricing": {
		"Tomato prices are trending upward this week. Premium quality fetches up to 30% more.",
		"Check the price prediction tool for a per-crop estimate. Quality grading makes a big difference.",
	},
	"market": {
		"Demand for organic produce is strong in urban markets right now.",
		"Nearby mandis are reporting good demand for leafy vegetables this season.",
	},
	"general": {
		"I can help with crop prices, market demand and selling advice. What would you like to know?",
		"Could you tell me a bit more? I know about prices, markets and crop planning.",
	},
}

// Follow-up prompts per intent. Clients show three per turn.
var chatSuggestions = map[string][]string{
	"greeting": {
		"What's the current price for tomatoes?",
		"Tell me about market trends",
		"Best time to sell my harvest",
	},
	"pricing": {
		"Predict the price for my crop",
		"How does quality affect the rate?",
		"Compare prices across mandis",
	},
	"market": {
		"Market trends in my area",
		"Which crops are in demand?",
		"How to improve my listings",
	},
	"general": {
		"Tell me more about pricing",
		"Market trends in my area",
		"How to improve crop quality?",
	},
}

// Reply classifies the message into a coarse intent and returns a canned
// answer plus the intent's follow-up suggestions.
func (s *AdvisorService) Reply(_ context.Context, message string) (*ChatReply, error) {
	intent := classifyIntent(message)
	replies := chatReplies[intent]
	reply := replies[len(message)%len(replies)]

	return &ChatReply{
		Reply:       reply,
		Intent:      intent,
		Suggestions: chatSuggestions[intent],
		Timestamp:   time.Now().UTC(),
	}, nil
}

func classifyIntent(message string) string {
	m := strings.ToLower(message)
	switch {
	case containsAny(m, "hello", "hi", "hey", "namaste"):
		return "greeting"
	case containsAny(m, "price", "rate", "cost"):
		return "pricing"
	case containsAny(m, "market", "demand", "sell"):
		return "market"
	default:
		return "general"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
