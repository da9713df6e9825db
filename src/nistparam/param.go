package nistparam

import (
	"encoding/hex"
	"io/ioutil"
	"strings"

	"github.com/nistparam/nistparam/src/common"
	"github.com/nistparam/nistparam/src/config"
	"github.com/sirupsen/logrus"
)

// literalLen is the length of "0xhh," plus the joining space.
const literalLen = 6

var defaultParser = newDiscardParser()

// Parser formats NIST parameters and logs the ones it rejects.
type Parser struct {
	logger *logrus.Entry
}

// NewParser creates a Parser that logs through conf.Logger().
func NewParser(conf *config.Config) *Parser {
	return &Parser{
		logger: conf.Logger(),
	}
}

func newDiscardParser() *Parser {
	logger := logrus.New()
	logger.Out = ioutil.Discard
	conf := config.NewDefaultConfig()
	conf.SetLogger(logger)
	return NewParser(conf)
}

// ParseParam returns the bytes of param as "0xhh," literals, last byte first,
// joined by single spaces. Spaces and newlines in param are ignored.
func ParseParam(param string) (string, error) {
	return defaultParser.Parse(param)
}

// ParseParamBytes returns the bytes of param in the order ParseParam lists
// them.
func ParseParamBytes(param string) ([]byte, error) {
	return defaultParser.ParseBytes(param)
}

// Parse is ParseParam with logging.
func (p *Parser) Parse(param string) (string, error) {
	digits, err := p.clean(param)
	if err != nil {
		return "", err
	}

	n := len(digits) / 2
	if n == 0 {
		return "", nil
	}

	var b strings.Builder
	b.Grow(n*literalLen - 1)
	for i := n - 1; i >= 0; i-- {
		b.WriteString("0x")
		b.WriteString(strings.ToLower(digits[2*i : 2*i+2]))
		b.WriteByte(',')
		if i > 0 {
			b.WriteByte(' ')
		}
	}

	p.logger.WithField("bytes", n).Debug("Parse")

	return b.String(), nil
}

// ParseBytes is ParseParamBytes with logging.
func (p *Parser) ParseBytes(param string) ([]byte, error) {
	digits, err := p.clean(param)
	if err != nil {
		return nil, err
	}

	res, err := hex.DecodeString(digits)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}

	p.logger.WithField("bytes", len(res)).Debug("ParseBytes")

	return res, nil
}

// clean strips separators and checks that what is left is a whole number of
// hex bytes.
func (p *Parser) clean(param string) (string, error) {
	digits := common.StripSeparators(param)

	for i := 0; i < len(digits); i++ {
		if !common.IsHexDigit(digits[i]) {
			return "", p.reject(common.NewInvalidInputErr(common.NonHexDigit, i, digits[i]), len(digits))
		}
	}

	if l := len(digits); l%2 != 0 {
		return "", p.reject(common.NewInvalidInputErr(common.OddLength, l-1, digits[l-1]), l)
	}

	return digits, nil
}

func (p *Parser) reject(err common.InvalidInputErr, length int) error {
	p.logger.WithFields(logrus.Fields{
		"length": length,
		"offset": err.Offset(),
	}).WithError(err).Debug("Rejected parameter")
	return err
}
