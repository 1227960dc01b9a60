package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solatis/cartorule/internal/blocks"
	"github.com/solatis/cartorule/internal/core/config"
	"github.com/solatis/cartorule/internal/edit"
	"github.com/solatis/cartorule/internal/session"
	"github.com/solatis/cartorule/internal/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply <collection-id>",
	Short: "Apply an edit intent to a collection and save the new revision",
	Long: `Reads one edit intent as JSON from stdin, dispatches it against the latest
revision of the collection and appends the result as a new revision.

Intent document shape:

  {"kind": "remove_rule", "ruleId": "..."}
  {"kind": "reorder_rules", "from": 2, "to": 0}
  {"kind": "update_rule_fields", "ruleId": "...", "fields": {"name": "Roads"}}
  {"kind": "add_rule", "ruleKind": "Classification"}`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

// intentDoc is the JSON wire shape for one edit intent.
// A deliberately flat document: fields irrelevant to kind are ignored.
type intentDoc struct {
	Kind         string          `json:"kind"`
	RuleID       string          `json:"ruleId,omitempty"`
	SymbolizerID string          `json:"symbolizerId,omitempty"`
	RuleKind     string          `json:"ruleKind,omitempty"`
	SymKind      string          `json:"symbolizerKind,omitempty"`
	Fields       json.RawMessage `json:"fields,omitempty"`
	From         int             `json:"from"`
	To           int             `json:"to"`
}

// ruleFieldsDoc mirrors edit.RuleFields for JSON decoding; pointer members
// preserve the supplied-vs-absent distinction.
type ruleFieldsDoc struct {
	Kind      *string        `json:"kind,omitempty"`
	Name      *string        `json:"name,omitempty"`
	Mandatory *bool          `json:"mandatory,omitempty"`
	Attribute *string        `json:"attribute,omitempty"`
	Method    *string        `json:"method,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

func runApply(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	id, err := types.ParseCollectionID(args[0])
	if err != nil {
		return fmt.Errorf("invalid collection id: %w", err)
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry := blocks.Default()
	if cfg.RegistryOverlay != "" {
		if err := blocks.LoadOverlay(registry, cfg.RegistryOverlay); err != nil {
			return err
		}
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	rules, revision, err := store.LoadLatest(id)
	if err != nil {
		return err
	}

	doc, err := readIntent(cmd.InOrStdin())
	if err != nil {
		return err
	}

	sess := session.New(rules,
		session.WithRegistry(registry),
		session.WithGeometry(cfg.GeometryType),
		session.WithLogger(logger))

	intent, err := buildIntent(sess, doc)
	if err != nil {
		return err
	}

	if err := sess.Dispatch(intent); err != nil {
		return err
	}

	next, err := store.SaveRevision(id, sess.Snapshot())
	if err != nil {
		return err
	}

	logger.Info("intent applied",
		zap.String("collection_id", string(id)),
		zap.String("kind", string(intent.Kind)),
		zap.Int64("from_revision", revision),
		zap.Int64("revision", next))
	return nil
}

func readIntent(r io.Reader) (intentDoc, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return intentDoc{}, fmt.Errorf("failed to read intent: %w", err)
	}
	var doc intentDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return intentDoc{}, fmt.Errorf("failed to parse intent: %w", err)
	}
	return doc, nil
}

// buildIntent converts the wire document into an engine intent. New rules
// and symbolizers are minted through the session so block defaults apply.
func buildIntent(sess *session.Session, doc intentDoc) (edit.Intent, error) {
	kind := edit.IntentKind(doc.Kind)
	intent := edit.Intent{
		Kind:         kind,
		RuleID:       types.RuleID(doc.RuleID),
		SymbolizerID: types.SymbolizerID(doc.SymbolizerID),
		From:         doc.From,
		To:           doc.To,
	}

	switch kind {
	case edit.IntentAddRule, edit.IntentReplaceRule:
		rule, ok := sess.NewRule(doc.RuleKind)
		if !ok {
			return edit.Intent{}, fmt.Errorf("rule kind %q not addable for geometry %q", doc.RuleKind, sess.Geometry())
		}
		intent.Rule = rule
	case edit.IntentAddSymbolizer:
		sym, ok := sess.NewSymbolizer(doc.SymKind)
		if !ok {
			return edit.Intent{}, fmt.Errorf("symbolizer kind %q not resolvable for geometry %q", doc.SymKind, sess.Geometry())
		}
		intent.Symbolizer = sym
	case edit.IntentUpdateRuleFields:
		var fields ruleFieldsDoc
		if len(doc.Fields) > 0 {
			if err := json.Unmarshal(doc.Fields, &fields); err != nil {
				return edit.Intent{}, fmt.Errorf("failed to parse rule fields: %w", err)
			}
		}
		intent.RuleFields = edit.RuleFields{
			Kind:      fields.Kind,
			Name:      fields.Name,
			Mandatory: fields.Mandatory,
			Attribute: fields.Attribute,
			Method:    fields.Method,
			Extra:     fields.Extra,
		}
	case edit.IntentUpdateSymbolizerFields:
		var props map[string]any
		if len(doc.Fields) > 0 {
			if err := json.Unmarshal(doc.Fields, &props); err != nil {
				return edit.Intent{}, fmt.Errorf("failed to parse symbolizer fields: %w", err)
			}
		}
		intent.SymbolizerFields = edit.SymbolizerFields{Properties: props}
	}

	// Unknown kinds pass through; Dispatch reports ErrUnknownIntent.
	return intent, nil
}
