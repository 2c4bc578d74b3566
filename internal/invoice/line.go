package invoice

import "strings"

// ExtractLine parses one trimmed text line into a LineRecord. A detail line
// looks like:
//
//	*蔬菜*芥兰苗 斤 72 5 360.00 免税 ***
//	*蔬菜*芥兰苗 斤 72 5 360.00 9% 32.40
//
// Lines without the "*category*item" prefix, or with fewer than four tokens
// (name + amount + rate + tax at minimum), are not detail lines and are
// reported with ok=false. The trailing three slots are fixed position, so
// extraction anchors on the end of the token sequence: last token = tax
// amount, second-to-last = tax rate, third-to-last = net amount. Whatever
// sits between the name and those three is the middle region holding
// unit/quantity/price in varying order and count.
func ExtractLine(line string) (LineRecord, bool) {
	if !categoryItemRe.MatchString(line) {
		return LineRecord{}, false
	}

	tokens := strings.Fields(line)
	if len(tokens) < 4 {
		return LineRecord{}, false
	}

	name := tokens[0]
	taxToken := tokens[len(tokens)-1]
	rateToken := tokens[len(tokens)-2]
	amountToken := tokens[len(tokens)-3]
	middle := tokens[1 : len(tokens)-3]

	rec := LineRecord{
		RawItem: name,
		TaxRate: rateToken,
	}
	rec.Category, rec.Item = SplitCategoryItem(name)

	if v, ok := ParseNumber(amountToken); ok {
		rec.NetAmount = &v
	}
	if v, ok := ResolveTaxAmount(taxToken, rateToken); ok {
		rec.TaxAmount = &v
	}

	rec.Unit, rec.Quantity, rec.UnitPrice = resolveMiddle(middle)

	switch {
	case rec.NetAmount != nil && rec.TaxAmount != nil:
		g := *rec.NetAmount + *rec.TaxAmount
		rec.GrossAmount = &g
	case rec.NetAmount != nil:
		g := *rec.NetAmount
		rec.GrossAmount = &g
	}

	return rec, true
}

// resolveMiddle recovers unit, quantity and unit price from the tokens
// between the item name and the trailing amount/rate/tax slots. The canonical
// column order is unit, quantity, price, so numbers are assigned right to
// left: the rightmost numeric token is the price, the one before it the
// quantity, and the token immediately preceding the quantity (if any) is the
// unit. With a single numeric token only the quantity is known. When no unit
// was found that way but a non-numeric token leads the middle region, that
// first token is taken as the unit label. The fallback can still misassign a
// unit when the quantity is absent but some other text token leads the
// region; that behavior is kept as-is.
func resolveMiddle(middle []string) (unit string, qty, price *float64) {
	if len(middle) == 0 {
		return "", nil, nil
	}

	var numIdx []int
	for i, tok := range middle {
		if _, ok := ParseNumber(tok); ok {
			numIdx = append(numIdx, i)
		}
	}

	switch {
	case len(numIdx) >= 2:
		p, _ := ParseNumber(middle[numIdx[len(numIdx)-1]])
		q, _ := ParseNumber(middle[numIdx[len(numIdx)-2]])
		price = &p
		qty = &q
		if unitIdx := numIdx[len(numIdx)-2] - 1; unitIdx >= 0 {
			unit = middle[unitIdx]
		}
	case len(numIdx) == 1:
		q, _ := ParseNumber(middle[numIdx[0]])
		qty = &q
		if unitIdx := numIdx[0] - 1; unitIdx >= 0 {
			unit = middle[unitIdx]
		}
	}

	if unit == "" {
		if _, numeric := ParseNumber(middle[0]); !numeric {
			unit = middle[0]
		}
	}
	return unit, qty, price
}
