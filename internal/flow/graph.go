package flow

// Graph はノードマップと隣接リストで表現されたフローグラフ。
// Config から構築された後は不変として扱う。
type Graph struct {
	// nodes はノードIDからノードへのマップ。
	nodes map[string]Node
	// children はノードIDから接続先ノードID一覧へのマップ。
	children map[string][]string
	// entries はエントリノードのID一覧（設定ファイルでの出現順）。
	entries []string
}

// NewGraph は設定からフローグラフを構築する。
// エントリノードは source が空、または properties.type が "entry" のノード。
func NewGraph(cfg *Config) *Graph {
	g := &Graph{
		nodes:    make(map[string]Node, len(cfg.Nodes)),
		children: make(map[string][]string, len(cfg.Nodes)),
	}

	for _, n := range cfg.Nodes {
		g.nodes[n.ID] = n
		if len(n.Target) > 0 {
			g.children[n.ID] = append(g.children[n.ID], n.Target...)
		}
		if n.Source == "" || n.Properties.Type == "entry" {
			g.entries = append(g.entries, n.ID)
		}
	}
	return g
}

// Entries はエントリノードのID一覧を返す。
func (g *Graph) Entries() []string {
	return g.entries
}

// Children は指定ノードの接続先ID一覧を返す。
func (g *Graph) Children(id string) []string {
	return g.children[id]
}
