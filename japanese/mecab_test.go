package japanese

import (
	"fmt"
	"reflect"
	"testing"

	"codeberg.org/snonux/wordroot/extproc"
)

// cannedPipe answers every input line with a fixed block of analysis
// output followed by the end-of-sentence marker.
type cannedPipe struct {
	output  []string
	pending []string
}

func (p *cannedPipe) Send(line string) error {
	p.pending = append(p.pending, p.output...)
	p.pending = append(p.pending, endOfSentence)
	return nil
}

func (p *cannedPipe) ReadLine() (string, error) {
	if len(p.pending) == 0 {
		return "", fmt.Errorf("read past end of scripted output")
	}
	line := p.pending[0]
	p.pending = p.pending[1:]
	return line, nil
}

func (p *cannedPipe) Close() error { return nil }

func TestMeCabAnalyze(t *testing.T) {
	pipe := &cannedPipe{output: []string{
		"これ\t名詞,代名詞,一般,*,*,*,これ,コレ,コレ",
		"は\t助詞,係助詞,*,*,*,*,は,ハ,ワ",
		"テスト\t名詞,サ変接続,*,*,*,*,テスト,テスト,テスト",
		"です\t助動詞,*,*,*,特殊・デス,基本形,です,デス,デス",
	}}
	m := &MeCab{proc: extproc.NewWithStarter("mecab", func() (extproc.Pipe, error) {
		return pipe, nil
	})}
	defer m.Close()

	recs, err := m.Analyze("これはテストです")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	var surfaces []string
	for _, rec := range recs {
		surfaces = append(surfaces, rec.Surface)
	}
	want := []string{"これ", "は", "テスト", "です"}
	if !reflect.DeepEqual(surfaces, want) {
		t.Errorf("Analyze() surfaces = %v, want %v", surfaces, want)
	}

	if recs[0].Root != "これ" || recs[0].Subclass1 != "代名詞" {
		t.Errorf("Analyze() first record = %+v", recs[0])
	}
}

func TestMeCabAnalyzeEmpty(t *testing.T) {
	m := &MeCab{proc: extproc.NewWithStarter("mecab", func() (extproc.Pipe, error) {
		t.Fatal("empty input should not start the process")
		return nil, nil
	})}

	recs, err := m.Analyze("")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("Analyze(\"\") = %v, want no records", recs)
	}
}
