package osmparser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Monocerum/escolar/pkg"
	"github.com/Monocerum/escolar/pkg/campus"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"
)

type scanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

// OsmParser. builds a campus source from the walkable ways of an openstreetmap extract.
// way end points, junctions and tagged nodes become vertices, untagged nodes in between are skipped and
// their neighbours joined directly.
type OsmParser struct {
	wayNodeMap           map[int64]NodeType
	places               map[int64]place
	order                []int64
	ways                 [][]int64
	defaultVulnerability float64
	logger               *zap.Logger
}

func NewOSMParser(logger *zap.Logger, defaultVulnerability float64) *OsmParser {
	return &OsmParser{
		wayNodeMap:           make(map[int64]NodeType),
		places:               make(map[int64]place),
		order:                make([]int64, 0),
		ways:                 make([][]int64, 0),
		defaultVulnerability: defaultVulnerability,
		logger:               logger,
	}
}

// IsOSMFile reports whether filename looks like an openstreetmap extract (.osm or .osm.pbf / .pbf).
func IsOSMFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".osm" || ext == ".pbf"
}

func newScanner(ctx context.Context, f *os.File) scanner {
	if strings.ToLower(filepath.Ext(f.Name())) == ".pbf" {
		return osmpbf.New(ctx, f, 1)
	}
	return osmxml.New(ctx, f)
}

// Parse reads mapFile twice: first the ways, to learn which nodes are used and how, then the nodes.
func (p *OsmParser) Parse(ctx context.Context, mapFile string) (*campus.Source, error) {
	if err := p.scanWays(ctx, mapFile); err != nil {
		return nil, err
	}
	if err := p.scanNodes(ctx, mapFile); err != nil {
		return nil, err
	}

	src := campus.NewSource(strings.TrimSuffix(filepath.Base(mapFile), filepath.Ext(mapFile)))
	ids := make(map[int64]string, len(p.places))
	for _, osmID := range p.order {
		pl := p.places[osmID]
		ids[osmID] = p.vertexID(pl)
		src.AddVertex(campus.SourceVertex{
			ID:            ids[osmID],
			Name:          pl.name,
			Class:         pl.class,
			Lat:           pl.coord.lat,
			Lon:           pl.coord.lon,
			Vulnerability: pl.vulnerability,
		})
	}

	edgeSet := make(map[[2]string]struct{})
	for _, way := range p.ways {
		prev := int64(-1)
		for _, nodeID := range way {
			if _, ok := p.places[nodeID]; !ok {
				continue
			}
			if prev != -1 && prev != nodeID {
				a, b := ids[prev], ids[nodeID]
				if a > b {
					a, b = b, a
				}
				if _, dup := edgeSet[[2]string{a, b}]; !dup {
					edgeSet[[2]string{a, b}] = struct{}{}
					src.AddEdge(ids[prev], ids[nodeID])
				}
			}
			prev = nodeID
		}
	}

	p.logger.Sugar().Infof("number of campus vertices: %v", len(src.Vertices))
	p.logger.Sugar().Infof("number of campus edges: %v", len(src.Edges))
	return src, nil
}

// vertexID. evacuation:id tag when present, otherwise the osm node id.
func (p *OsmParser) vertexID(pl place) string {
	if pl.ref != "" {
		return pl.ref
	}
	return strconv.FormatInt(pl.id, 10)
}

func (p *OsmParser) scanWays(ctx context.Context, mapFile string) error {
	f, err := os.Open(mapFile)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := newScanner(ctx, f)
	defer sc.Close()

	countWays := 0
	for sc.Scan() {
		way, ok := sc.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}
		countWays++

		nodes := make([]int64, 0, len(way.Nodes))
		for i, node := range way.Nodes {
			id := int64(node.ID)
			nodes = append(nodes, id)
			if _, ok := p.wayNodeMap[id]; !ok {
				if i == 0 || i == len(way.Nodes)-1 {
					p.wayNodeMap[id] = END_NODE
				} else {
					p.wayNodeMap[id] = BETWEEN_NODE
				}
			} else {
				p.wayNodeMap[id] = JUNCTION_NODE
			}
		}
		p.ways = append(p.ways, nodes)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan ways of %s: %w", mapFile, err)
	}

	p.logger.Sugar().Infof("scanned openstreetmap ways: %d", countWays)
	return nil
}

func (p *OsmParser) scanNodes(ctx context.Context, mapFile string) error {
	f, err := os.Open(mapFile)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := newScanner(ctx, f)
	defer sc.Close()

	for sc.Scan() {
		node, ok := sc.Object().(*osm.Node)
		if !ok {
			continue
		}
		id := int64(node.ID)
		nodeType, onWay := p.wayNodeMap[id]
		if !onWay {
			continue
		}

		class := placeClass(node, nodeType)
		if nodeType == BETWEEN_NODE && class == "" && node.Tags.Find("name") == "" {
			continue
		}

		p.places[id] = place{
			id:            id,
			ref:           node.Tags.Find(ID_TAG),
			name:          node.Tags.Find("name"),
			class:         class,
			vulnerability: p.vulnerability(node),
			coord:         nodeCoord{lat: node.Lat, lon: node.Lon},
		}
		p.order = append(p.order, id)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan nodes of %s: %w", mapFile, err)
	}
	return nil
}

func (p *OsmParser) vulnerability(node *osm.Node) float64 {
	val := node.Tags.Find(VULNERABILITY_TAG)
	if val == "" {
		return p.defaultVulnerability
	}
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		p.logger.Warn("invalid vulnerability tag, using default", zap.Int64("node", int64(node.ID)),
			zap.String("value", val))
		return p.defaultVulnerability
	}
	return v
}

// placeClass. explicit evacuation:class tag first, then the usual osm tagging of entrances,
// assembly points and gates.
func placeClass(node *osm.Node, nodeType NodeType) string {
	if class := node.Tags.Find(CLASS_TAG); class != "" {
		return class
	}
	switch {
	case node.Tags.Find("emergency") == "assembly_point":
		return string(pkg.EVACUATION_AREA)
	case node.Tags.Find("entrance") != "":
		return string(pkg.EXIT)
	case node.Tags.Find("barrier") == "gate":
		return string(pkg.GATE)
	case node.Tags.Find("building") != "":
		return string(pkg.BUILDING)
	case nodeType == JUNCTION_NODE:
		return string(pkg.INTERSECTION)
	}
	return ""
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	if highway == "" {
		return false
	}
	_, ok := acceptedHighway[highway]
	return ok
}
