/*
Package modelstore persists a boost.Ensemble's trained trees, either
to a plain io.Writer/io.Reader as JSON or keyed in Redis.
*/
package modelstore

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arborly/goboost/boost"
	"github.com/arborly/goboost/gbtree"
	"github.com/arborly/goboost/objective"
)

// jsonTree is the on-the-wire shape of one gbtree.Tree: parallel node
// and stat arrays, indexed by node id exactly as gbtree.Tree keeps
// them internally.
type jsonTree struct {
	Nodes []gbtree.NodeData `json:"nodes"`
	Stats []gbtree.NodeStat `json:"stats"`
}

// jsonModel is the on-the-wire shape of a whole ensemble.
type jsonModel struct {
	Param     gbtree.Params `json:"param"`
	Objective string        `json:"objective"`
	Trees     []jsonTree    `json:"trees"`
}

// objectiveByName resolves the handful of built-in objectives by the
// name their Name() method returns; Encode always round-trips one of
// these, so Decode never needs an open-ended registry.
func objectiveByName(name string) (objective.Objective, error) {
	switch name {
	case objective.Squared{}.Name():
		return objective.Squared{}, nil
	case objective.LogLoss{}.Name():
		return objective.LogLoss{}, nil
	case objective.Poisson{}.Name():
		return objective.Poisson{}, nil
	}
	return nil, fmt.Errorf("modelstore: unknown objective %q", name)
}

// JSONCodec encodes and decodes a *boost.Ensemble as JSON.
type JSONCodec struct{}

// Encode writes ens to w as JSON.
func (JSONCodec) Encode(w io.Writer, ens *boost.Ensemble) error {
	m := jsonModel{
		Param:     ens.Config.Tree,
		Objective: ens.Config.Objective.Name(),
	}
	for _, t := range ens.Trainer.Trees {
		m.Trees = append(m.Trees, jsonTree{Nodes: t.ExportNodes(), Stats: t.ExportStats()})
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&m); err != nil {
		return fmt.Errorf("modelstore: encoding model: %v", err)
	}
	return nil
}

// Decode reads a JSON-encoded ensemble from r and reconstructs a
// *boost.Ensemble with scoreLen training rows worth of running-score
// scratch (the running score itself is not persisted; a decoded
// ensemble is ready for Predict but not for a further Run call
// without separately re-deriving scores for its original rows).
func (JSONCodec) Decode(r io.Reader, scoreLen int) (*boost.Ensemble, error) {
	var m jsonModel
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("modelstore: decoding model: %v", err)
	}
	obj, err := objectiveByName(m.Objective)
	if err != nil {
		return nil, err
	}
	cfg := boost.Config{Tree: m.Param, Objective: obj}
	ens, err := boost.New(cfg, scoreLen)
	if err != nil {
		return nil, fmt.Errorf("modelstore: rebuilding ensemble: %v", err)
	}
	for _, jt := range m.Trees {
		ens.Trainer.Trees = append(ens.Trainer.Trees, gbtree.ImportTree(&ens.Config.Tree, jt.Nodes, jt.Stats))
	}
	return ens, nil
}
