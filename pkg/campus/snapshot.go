package campus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// snapshot layout, one record per line, fields separated by tabs:
//
//	name
//	numVertices numEdges hasBounds leftLon rightLon bottomLat
//	id name class lat lon vulnerability   (numVertices lines)
//	a b                                   (numEdges lines)

// WriteSnapshot writes src as a bzip2 compressed snapshot.
func WriteSnapshot(filename string, src *Source) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)
	defer w.Flush()

	fmt.Fprintf(w, "%s\n", src.Name)

	hasBounds := 0
	var b Bounds
	if src.Bounds != nil {
		hasBounds = 1
		b = *src.Bounds
	}
	fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%s\n", len(src.Vertices), len(src.Edges), hasBounds,
		formatFloat(b.LeftLon), formatFloat(b.RightLon), formatFloat(b.BottomLat))

	for _, v := range src.Vertices {
		if strings.ContainsAny(v.ID+v.Name+v.Class, "\t\n") {
			return fmt.Errorf("vertex %q: tabs and newlines are not allowed in snapshot fields", v.ID)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", v.ID, v.Name, v.Class,
			formatFloat(v.Lat), formatFloat(v.Lon), formatFloat(v.Vulnerability))
	}

	for _, e := range src.Edges {
		_, err := fmt.Fprintf(w, "%s\t%s\n", e[0], e[1])
		if err != nil {
			return err
		}
	}

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func ReadSnapshot(filename string) (*Source, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	name, err := readLine(br)
	if err != nil {
		return nil, err
	}

	line, err := readLine(br)
	if err != nil {
		return nil, err
	}
	header := strings.Split(line, "\t")
	if len(header) != 6 {
		return nil, fmt.Errorf("invalid snapshot header: %q", line)
	}
	numVertices, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, err
	}
	numEdges, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, err
	}
	floats, err := parseFloats(header[3:])
	if err != nil {
		return nil, err
	}

	src := &Source{
		Name:     name,
		Vertices: make([]SourceVertex, 0, numVertices),
		Edges:    make([][2]string, 0, numEdges),
	}
	if header[2] == "1" {
		src.Bounds = &Bounds{LeftLon: floats[0], RightLon: floats[1], BottomLat: floats[2]}
	}

	for i := 0; i < numVertices; i++ {
		line, err := readLine(br)
		if err != nil {
			return nil, err
		}
		tokens := strings.Split(line, "\t")
		if len(tokens) != 6 {
			return nil, fmt.Errorf("invalid snapshot vertex line %d: %q", i, line)
		}
		vals, err := parseFloats(tokens[3:])
		if err != nil {
			return nil, err
		}
		src.AddVertex(SourceVertex{
			ID:            tokens[0],
			Name:          tokens[1],
			Class:         tokens[2],
			Lat:           vals[0],
			Lon:           vals[1],
			Vulnerability: vals[2],
		})
	}

	for i := 0; i < numEdges; i++ {
		line, err := readLine(br)
		if err != nil {
			return nil, err
		}
		tokens := strings.Split(line, "\t")
		if len(tokens) != 2 {
			return nil, fmt.Errorf("invalid snapshot edge line %d: %q", i, line)
		}
		src.AddEdge(tokens[0], tokens[1])
	}

	return src, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseFloats(tokens []string) ([]float64, error) {
	vals := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
