// Package plugin wires the translation pipeline into a chat client: the
// command triggers, the incoming-event hook, and delivery of background
// translation results back onto the host's UI loop.
package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/linguarelay/linguarelay/internal/bridge"
	"github.com/linguarelay/linguarelay/internal/langs"
	"github.com/linguarelay/linguarelay/internal/pipeline"
	"github.com/linguarelay/linguarelay/internal/registry"
)

// Host is the surface consumed from the chat client. Any operation can
// come up empty when the client is not connected or no context is focused;
// handlers degrade to a printed diagnostic, never a crash.
type Host interface {
	// Network returns the network identity of the focused context.
	Network() (string, bool)
	// Channel returns the channel identity of the focused context.
	Channel() (string, bool)
	// StripFormatting removes display formatting (colors, attributes).
	StripFormatting(text string) string
	// FindConversation locates a conversation window by identity.
	FindConversation(network, channel string) (Conversation, bool)
	// Print writes plain text into the focused window.
	Print(text string)
}

// Conversation is one addressable chat window.
type Conversation interface {
	// Emit injects a formatted event into the window's event stream.
	Emit(event string, words []string)
	// Print writes plain text into the window.
	Print(text string)
	// Command runs a client command (SAY, ME, ...) in the window.
	Command(line string)
}

// Translator runs the whole-message pipeline. *pipeline.Pipeline
// implements it.
type Translator interface {
	TranslateMessage(ctx context.Context, text, source, target string) pipeline.Aggregate
}

// LanguageDetector is the optional incoming-text language probe.
// *detector.Detector implements it.
type LanguageDetector interface {
	DetectISO(text string) (string, bool)
}

// loopMarker tags every synthetic re-emitted event. The event handler
// checks for it and ignores tagged events, otherwise the translated text it
// injects would be picked up and translated again, forever.
const loopMarker = "~"

// originalColor is the mIRC color code used when echoing original text and
// translator diagnostics into a window.
const originalColor = "\x0313"

// Events lists the host print events the plugin hooks with OnEvent.
var Events = []string{
	"Channel Message", "Channel Msg Hilight",
	"Channel Action", "Channel Action Hilight",
	"Private Message", "Private Message to Dialog",
	"Private Action", "Private Action to Dialog",
	"You Part", "You Part with Reason",
	"Disconnected",
}

const (
	noContextMsg        = "Translator: cannot determine the current network/channel; is the client connected?"
	lostConversationMsg = "Translator: conversation window is gone; dropping a finished translation."
)

// Plugin holds the translator state for one client process. All methods
// must be invoked on the host's UI loop; background work is dispatched
// through the bridge and its results are posted back to the same loop.
type Plugin struct {
	host Host
	reg  *registry.Registry
	pipe Translator
	loop *bridge.Loop
	det  LanguageDetector
	log  *slog.Logger
}

// New assembles a Plugin. det may be nil to disable the incoming-language
// probe; log may be nil for the default logger.
func New(host Host, reg *registry.Registry, pipe Translator, loop *bridge.Loop, det LanguageDetector, log *slog.Logger) *Plugin {
	if log == nil {
		log = slog.Default()
	}
	return &Plugin{host: host, reg: reg, pipe: pipe, loop: loop, det: det, log: log}
}

// ListLang prints the supported-language table, three per row.
func (p *Plugin) ListLang() {
	p.host.Print("")
	p.host.Print("------------------------ Supported Languages ------------------------")
	all := langs.All()
	for i := 0; i+2 < len(all); i += 3 {
		p.host.Print(fmt.Sprintf("%-15s%-4s    %-15s%-4s    %-15s%-4s",
			all[i].Name, all[i].Code,
			all[i+1].Name, all[i+1].Code,
			all[i+2].Name, all[i+2].Code))
	}
	p.host.Print("")
}

// SetLang activates translation for the current context with the given
// source and target languages, each a full name or short code.
func (p *Plugin) SetLang(args []string) {
	if len(args) != 2 {
		p.host.Print("USAGE: SETLANG <source> <target> - sets the source and target languages for the current context.")
		return
	}

	src, okSrc := langs.Find(args[0])
	tgt, okTgt := langs.Find(args[1])
	if !okSrc || !okTgt || src.Code == tgt.Code {
		p.host.Print("Bad language parameters. Use LISTLANG for the supported languages, and don't set the source and target the same.")
		return
	}

	key, ok := p.currentKey()
	if !ok {
		p.host.Print(noContextMsg)
		return
	}

	if err := p.reg.Activate(key, src.Code, tgt.Code); err != nil {
		p.host.Print("Translator: " + err.Error() + ".")
		return
	}
	p.host.Print(fmt.Sprintf("TRANSLATION IS ON FOR THIS CONTEXT! %s (you) to %s (them).", src.Name, tgt.Name))
}

// OffLang deactivates translation for the current context.
func (p *Plugin) OffLang() {
	key, ok := p.currentKey()
	if !ok {
		p.host.Print(noContextMsg)
		return
	}
	p.reg.Deactivate(key)
	p.host.Print("Translation turned OFF for this context.")
}

// Say translates an outgoing message off the UI loop and then sends it with
// the given client verb (SAY for a message, ME for an action). It reports
// whether the input was consumed; when translation is off for the current
// context the caller should let the client send the text untranslated.
func (p *Plugin) Say(verb, message string) bool {
	key, ok := p.currentKey()
	if !ok {
		p.host.Print(noContextMsg)
		return true
	}
	pair, on := p.reg.Lookup(key)
	if !on {
		return false
	}

	// Snapshot everything on the UI loop; the worker closure owns copies.
	original := message
	stripped := p.host.StripFormatting(message)

	p.loop.Go(func() {
		agg := p.pipe.TranslateMessage(context.Background(), stripped, pair.Source, pair.Target)
		p.loop.Post(func() { p.deliverOutgoing(key, verb, original, agg) })
	})
	return true
}

// OnEvent handles one incoming print event. words carries the raw event
// fields, sender first. It reports whether the event was consumed.
func (p *Plugin) OnEvent(event string, words []string) bool {
	if len(words) == 0 {
		return false
	}
	if words[len(words)-1] == loopMarker {
		// One of our own re-emissions coming back around.
		return false
	}

	key, ok := p.currentKey()
	if !ok {
		return false
	}
	pair, on := p.reg.Lookup(key)
	if !on {
		return false
	}

	sender := words[0]
	var message, mode string
	if len(words) > 1 {
		message = words[1]
	}
	if len(words) > 2 {
		mode = words[2]
	}
	stripped := p.host.StripFormatting(message)

	// Incoming text is translated back into the user's own language.
	if p.det != nil {
		if code, found := p.det.DetectISO(stripped); found && strings.EqualFold(code, pair.Source) {
			return false
		}
	}

	p.loop.Go(func() {
		agg := p.pipe.TranslateMessage(context.Background(), stripped, pair.Target, pair.Source)
		p.loop.Post(func() { p.deliverIncoming(key, event, sender, mode, message, agg) })
	})
	return true
}

// deliverOutgoing runs on the UI loop with an owned aggregate.
func (p *Plugin) deliverOutgoing(key registry.Key, verb, original string, agg pipeline.Aggregate) {
	conv, ok := p.host.FindConversation(key.Network, key.Channel)
	if !ok {
		p.host.Print(lostConversationMsg)
		return
	}

	text := agg.Text
	if text == "" {
		text = original
	}
	conv.Command(verb + " " + text)
	if !agg.Clean() {
		conv.Print(originalColor + "Translator: sent partially untranslated (" + agg.ErrorSummary() + ").")
	}
	p.checkRateLimit(key, conv, agg)
}

// deliverIncoming runs on the UI loop with an owned aggregate.
func (p *Plugin) deliverIncoming(key registry.Key, event, sender, mode, original string, agg pipeline.Aggregate) {
	conv, ok := p.host.FindConversation(key.Network, key.Channel)
	if !ok {
		p.host.Print(lostConversationMsg)
		return
	}

	words := []string{sender, agg.Text}
	if mode != "" {
		words = append(words, mode)
	}
	words = append(words, loopMarker)
	conv.Emit(event, words)

	if agg.Clean() {
		conv.Print(originalColor + original)
	} else {
		conv.Print(originalColor + "Translator: " + agg.ErrorSummary() + ".")
	}
	p.checkRateLimit(key, conv, agg)
}

// checkRateLimit deactivates the context after a rate-limited delivery.
// The message itself has already been delivered best-effort.
func (p *Plugin) checkRateLimit(key registry.Key, conv Conversation, agg pipeline.Aggregate) {
	if !agg.RateLimited {
		return
	}
	p.reg.Deactivate(key)
	conv.Print(originalColor + "Translator: rate limit reached; translation turned OFF for this context.")
	p.log.Warn("rate limit reached, context deactivated",
		"network", key.Network, "channel", key.Channel)
}

func (p *Plugin) currentKey() (registry.Key, bool) {
	network, ok := p.host.Network()
	if !ok {
		return registry.Key{}, false
	}
	channel, ok := p.host.Channel()
	if !ok {
		return registry.Key{}, false
	}
	return registry.Key{Network: network, Channel: channel}, true
}
