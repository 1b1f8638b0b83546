package teachpy

import "context"

// View is what the presentation layer renders after each command: the
// session listing, the active session id, and its transcript.
type View struct {
	CurrentID string
	Sessions  []Summary
	Messages  []Message
}

// App is the command surface exposed to the presentation layer. Each
// command runs to completion before the next one is issued; there are no
// background tasks or fire-and-forget writes.
type App struct {
	manager *Manager
	bridge  *Bridge
}

// NewApp creates an App over the given manager and bridge.
func NewApp(manager *Manager, bridge *Bridge) *App {
	return &App{manager: manager, bridge: bridge}
}

// Refresh resolves the current session (creating one when absent) and
// returns the updated view.
func (a *App) Refresh(ctx context.Context) (View, error) {
	id, err := a.manager.CurrentSession(ctx)
	if err != nil {
		return View{}, err
	}
	return a.view(ctx, id)
}

// NewSession creates a session, makes it active, and invalidates the
// conversation handle.
func (a *App) NewSession(ctx context.Context) (View, error) {
	id, err := a.manager.CreateSession(ctx)
	if err != nil {
		return View{}, err
	}
	a.bridge.Invalidate()
	return a.view(ctx, id)
}

// SelectSession makes id the active session and invalidates the
// conversation handle.
func (a *App) SelectSession(ctx context.Context, id string) (View, error) {
	if err := a.manager.SelectSession(ctx, id); err != nil {
		return View{}, err
	}
	a.bridge.Invalidate()
	return a.view(ctx, id)
}

// DeleteSession removes the session. Deleting the active session
// invalidates the conversation handle and the refresh creates a
// replacement.
func (a *App) DeleteSession(ctx context.Context, id string) (View, error) {
	current, err := a.manager.CurrentSession(ctx)
	if err != nil {
		return View{}, err
	}
	if err := a.manager.DeleteSession(ctx, id); err != nil {
		return View{}, err
	}
	if id == current {
		a.bridge.Invalidate()
	}
	return a.Refresh(ctx)
}

// SubmitMessage persists the user turn, relays it to the model endpoint,
// and persists the reply. On an endpoint failure the user turn is rolled
// back so a retry does not duplicate it, and the failure is returned for
// the presentation layer to surface.
func (a *App) SubmitMessage(ctx context.Context, text string) (View, error) {
	id, err := a.manager.CurrentSession(ctx)
	if err != nil {
		return View{}, err
	}
	if err := a.manager.AppendMessage(ctx, id, Message{Role: RoleUser, Content: text}); err != nil {
		return View{}, err
	}

	conv, err := a.bridge.Conversation(ctx, id)
	if err != nil {
		if rbErr := a.manager.RollbackFailedSend(ctx, id); rbErr != nil {
			return View{}, rbErr
		}
		return View{}, err
	}

	reply, err := conv.Send(ctx, text)
	if err != nil {
		if rbErr := a.manager.RollbackFailedSend(ctx, id); rbErr != nil {
			return View{}, rbErr
		}
		return View{}, err
	}

	if err := a.manager.AppendMessage(ctx, id, Message{Role: RoleAssistant, Content: reply}); err != nil {
		return View{}, err
	}
	return a.view(ctx, id)
}

func (a *App) view(ctx context.Context, id string) (View, error) {
	sessions, err := a.manager.ListSessions(ctx)
	if err != nil {
		return View{}, err
	}
	messages, err := a.manager.Messages(ctx, id)
	if err != nil {
		return View{}, err
	}
	return View{CurrentID: id, Sessions: sessions, Messages: messages}, nil
}
