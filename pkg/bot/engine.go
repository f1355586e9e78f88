package bot

import (
	"context"
	"fmt"
	"strings"

	"restobot-be/internal/pkg/logger"
	"restobot-be/pkg/nlu"
	"restobot-be/pkg/store"
)

// Intent names as the classifier emits them.
const (
	IntentGeneralGreeting    = "GeneralGreeting"
	IntentSearchRestaurant   = "SearchRestaurant"
	IntentShowMenu           = "ShowMenu"
	IntentAddToCart          = "AddToCart"
	IntentRemoveFromCart     = "RemoveFromCart"
	IntentViewCart           = "ViewCart"
	IntentEditCart           = "EditCart"
	IntentClearCart          = "ClearCart"
	IntentMakeReservation    = "MakeReservation"
	IntentModifyReservation  = "ModifyReservation"
	IntentCancelReservation  = "CancelReservation"
	IntentShowReservations   = "ShowReservations"
	IntentPayOrder           = "PayOrder"
	IntentConfirmOrder       = "ConfirmOrder"
	IntentCheckOrderStatus   = "CheckOrderStatus"
	IntentCancelOrder        = "CancelOrder"
	IntentCheckPaymentStatus = "CheckPaymentStatus"
	IntentRecommendItem      = "RecommendItem"
)

var resetKeywords = map[string]bool{
	"exit":   true,
	"cancel": true,
	"reset":  true,
}

// Engine is the dialog state machine. It owns no storage: callers load the
// profile before a turn and persist it after, so the engine is safe to share
// across conversations.
type Engine struct {
	classifier nlu.Classifier
	deps       Collaborators
	log        logger.ILogger
	flows      map[string]*Flow
}

// NewEngine wires the flow table. Every intent the classifier can emit maps
// to exactly one flow.
func NewEngine(classifier nlu.Classifier, deps Collaborators, log logger.ILogger) *Engine {
	e := &Engine{
		classifier: classifier,
		deps:       deps,
		log:        log,
		flows:      map[string]*Flow{},
	}
	for _, f := range []*Flow{
		e.authFlow(),
		e.searchRestaurantFlow(),
		e.showMenuFlow(),
		e.addToCartFlow(),
		e.removeFromCartFlow(),
		e.viewCartFlow(),
		e.editCartFlow(),
		e.clearCartFlow(),
		e.makeReservationFlow(),
		e.modifyReservationFlow(),
		e.cancelReservationFlow(),
		e.showReservationsFlow(),
		e.payOrderFlow(),
		e.checkOrderStatusFlow(),
		e.cancelOrderFlow(),
		e.checkPaymentStatusFlow(),
		e.recommendItemFlow(),
	} {
		e.flows[f.Name] = f
	}
	return e
}

// HandleTurn runs one user utterance through the state machine, mutating the
// profile in place, and returns the replies to send back.
func (e *Engine) HandleTurn(ctx context.Context, p *store.ConversationProfile, rawText string) []Reply {
	text := strings.TrimSpace(rawText)
	turn := &Turn{Profile: p, Text: text}

	// Reset keywords override everything, including mid-flow state.
	if resetKeywords[turn.Lower()] {
		p.ClearFlow()
		if !p.IsAuthenticated {
			p.ActiveIntent = store.IntentAuthentication
			p.Step = store.StepChoosingAuthMode
			return []Reply{Text(msgReset), Text(msgAuthWelcome)}
		}
		return []Reply{Text(msgReset)}
	}

	// Unauthenticated conversations never reach the classifier.
	if !p.IsAuthenticated {
		if p.ActiveIntent != store.IntentAuthentication {
			p.ActiveIntent = store.IntentAuthentication
			p.Step = store.StepChoosingAuthMode
		}
		return e.runFlow(ctx, turn)
	}

	query := text
	if p.ActiveIntent != "" {
		// Continuation hint: bias classification toward the active task.
		query = fmt.Sprintf("might be %s but is %s", p.ActiveIntent, text)
	}

	result, err := e.classifier.Classify(ctx, query)
	if err != nil {
		e.log.Warn("BotEngine", "classifier unavailable, treating turn as None", map[string]interface{}{
			"conversation_id": p.ConversationID,
			"error":           err.Error(),
		})
		result = &nlu.Result{TopIntent: nlu.IntentNone}
	}

	// ConfirmOrder and PayOrder share one flow.
	if result.TopIntent == IntentConfirmOrder {
		result.TopIntent = IntentPayOrder
	}

	MergeEntities(&p.Context, result.Entities)

	if p.ActiveIntent == "" {
		switch result.TopIntent {
		case nlu.IntentNone:
			return []Reply{Text(msgSorry)}
		case IntentGeneralGreeting:
			return []Reply{Text(msgGreeting)}
		}
		if _, ok := e.flows[result.TopIntent]; !ok {
			e.log.Warn("BotEngine", "classifier returned unknown intent", map[string]interface{}{
				"conversation_id": p.ConversationID,
				"intent":          result.TopIntent,
			})
			return []Reply{Text(msgSorry)}
		}
		p.ActiveIntent = result.TopIntent
		p.Step = ""
	} else if result.TopIntent != p.ActiveIntent && result.TopIntent != nlu.IntentNone && result.TopIntent != IntentGeneralGreeting {
		// Intent lock: a different classification mid-flow warns without
		// touching the active state.
		return []Reply{Text(msgLockViolation, p.ActiveIntent)}
	}

	return e.runFlow(ctx, turn)
}

func (e *Engine) runFlow(ctx context.Context, t *Turn) []Reply {
	p := t.Profile
	flow, ok := e.flows[p.ActiveIntent]
	if !ok {
		p.ClearFlow()
		return []Reply{Text(msgSorry)}
	}

	step := p.Step
	if step == "" {
		step = flow.Initial
	}
	handler, ok := flow.Steps[step]
	if !ok {
		e.log.Warn("BotEngine", "profile carried unknown step, restarting flow", map[string]interface{}{
			"conversation_id": p.ConversationID,
			"intent":          flow.Name,
			"step":            step,
		})
		step = flow.Initial
		handler = flow.Steps[step]
	}

	result := handler(ctx, t)
	switch {
	case result.Complete:
		p.ClearFlow()
		if result.ClearCart {
			p.Cart = []store.CartLine{}
		}
	case result.Next != "":
		p.Step = result.Next
	default:
		p.Step = step
	}
	return result.Replies
}

// fail logs an unexpected collaborator error and resets the conversation.
func (e *Engine) fail(t *Turn, flowName string, err error) StepResult {
	e.log.Error("BotEngine", "flow failed, resetting conversation", map[string]interface{}{
		"conversation_id": t.Profile.ConversationID,
		"intent":          flowName,
		"step":            t.Profile.Step,
		"error":           err.Error(),
	})
	return done(Text(msgApology))
}

// emit publishes a domain event if a sink is wired.
func (e *Engine) emit(ctx context.Context, eventType string, payload map[string]interface{}) {
	if e.deps.Events != nil {
		e.deps.Events.Emit(ctx, eventType, payload)
	}
}
