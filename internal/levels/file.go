package levels

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// fileLevel is the YAML shape of one table entry. Amounts are strings so the
// file keeps exact cent values.
type fileLevel struct {
	Level int    `yaml:"level"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
}

// LoadFile reads a replacement level table from a YAML file and validates it.
//
// Expected format:
//
//	levels:
//	  - level: 1
//	    from: "1"
//	    to: "1000.99"
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "levels: read table %s", path)
	}

	var wrapper struct {
		Levels []fileLevel `yaml:"levels"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "levels: parse table")
	}

	table := make(Table, 0, len(wrapper.Levels))
	for _, fl := range wrapper.Levels {
		from, err := decimal.NewFromString(fl.From)
		if err != nil {
			return nil, eris.Wrapf(err, "levels: level %d from %q", fl.Level, fl.From)
		}
		to, err := decimal.NewFromString(fl.To)
		if err != nil {
			return nil, eris.Wrapf(err, "levels: level %d to %q", fl.Level, fl.To)
		}
		table = append(table, Level{Level: fl.Level, From: from, To: to})
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
