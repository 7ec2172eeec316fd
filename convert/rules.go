package convert

import "github.com/anatoleg/spacy-ud/ud"

// nominal POS tags, for rules that distinguish nominals from predicates
var nominal = map[string]bool{
	"NOUN":  true,
	"PRON":  true,
	"PROPN": true,
}

// applyRules runs the structural rules over the words in sentence
// order. Rule dispatch looks at the relation a word carries when its
// turn comes, so a rule can change how a later word is handled.
func (c *Converter) applyRules(sent *ud.Sentence) {
	for _, w := range sent.Words {
		switch w.Dep {
		case "aux":
			auxRule(w)
		case "oprd":
			oprdRule(w)
		case "amod":
			amodRule(w)
		case "nmod":
			nmodRule(w)
		case "nummod":
			nummodRule(w)
		case "advcl":
			advclRule(w)
		case "pobj":
			c.pobjRule(w)
		case "pcomp":
			c.pcompRule(w)
		case "xcomp", "ccomp":
			compRule(w)
		case "attr":
			c.attrRule(w)
		case "acomp":
			acompRule(w)
		case "advmod":
			advmodRule(w)
		case "npadvmod":
			npadvmodRule(w)
		case "conj":
			conjRule(w)
		case "dep":
			depRule(w)
		}
	}
}

// auxRule turns a PART auxiliary into a marker: "a way to get ..."
// attaches "to" with mark, not aux. When the governing verb carries
// acl:relcl from the rename table, UD wants plain acl there.
func auxRule(w *ud.Word) {
	if w.Upos != "PART" {
		return
	}
	w.Dep = "mark"

	gov := w.Governor()
	if gov != nil && gov.Dep == "acl:relcl" {
		gov.Dep = "acl"
	}
}

// oprdRule resolves the parser's object predicate: nominals become
// objects ("I had a dog named Fido"), everything else an adverbial
// clause ("Entering the room sad is not recommended").
func oprdRule(w *ud.Word) {
	if nominal[w.Upos] {
		w.Dep = "obj"
	} else {
		w.Dep = "advcl"
	}
}

// amodRule: the parser sometimes hangs amod off a verb ("Sue looks
// great"); in UD amod modifies nominals, so the verbal case is xcomp.
func amodRule(w *ud.Word) {
	gov := w.Governor()
	if gov != nil && gov.Upos == "VERB" {
		w.Dep = "xcomp"
	}
}

// nmodRule fixes currency expressions like "$40" where the parser
// attached the symbol under the number. UD makes the symbol the object
// and the number its nummod.
func nmodRule(w *ud.Word) {
	gov := w.Governor()
	if gov == nil || w.Lemma != "$" || gov.Upos != "NUM" {
		return
	}

	w.Dep = gov.Dep
	w.Gov = gov.Gov
	gov.Dep = "nummod"
	gov.Gov = w.Index
	redirectDependents(gov, w)
}

// nummodRule: a number governed by the immediately preceding noun is a
// plain nominal modifier in UD ("apartment 71").
func nummodRule(w *ud.Word) {
	gov := w.Governor()
	if gov != nil && gov.Upos == "NOUN" && gov.Index == w.Index-1 {
		w.Dep = "nmod"
	}
}

// advclRule handles adverbial clauses hanging off "be" (copula
// formation, with csubj promoted to csubj:outer) and off nominals
// without a copula, which UD annotates acl.
func advclRule(w *ud.Word) {
	gov := w.Governor()
	if gov == nil {
		return
	}

	if gov.Lemma == "be" && w.Subject() != nil {
		makeCopula(w, gov)
		// w now heads the copula
		if csubj := w.Dependent("csubj"); csubj != nil && csubj.Upos == "VERB" {
			csubj.Dep = "csubj:outer"
		}
	} else if nominal[gov.Upos] && gov.Dependent("cop") == nil {
		w.Dep = "acl"
	}
}

// pobjRule collapses a preposition chain: the prepositional object is
// re-attached to the chain head as nmod, obl or obl:agent and the
// prepositions become its case markers.
func (c *Converter) pobjRule(w *ud.Word) {
	head, preps := prepChain(w)
	if len(preps) == 0 {
		c.warnf("pobj without preps, word: %s", w.Text)
		return
	}
	if head == nil {
		c.warnf("pobj chain without head, word: %s", w.Text)
		return
	}

	if head.Lemma != "be" || !makeCopula(w, head) {
		prep := preps[0]
		switch prep.Dep {
		case "prep":
			if nominal[head.Upos] {
				w.Dep = "nmod"
			} else {
				w.Dep = "obl"
			}
		case "iobj":
			// "give the toys to Mary": the renamed dative
			w.Dep = "obl"
		case "agent":
			w.Dep = "obl:agent"
		default:
			c.warnf("unknown dep from PREP in: %s <-%s- %s <-pobj- %s",
				head.Text, prep.Dep, prep.Text, w.Text)
			return
		}
		w.Gov = head.Index
	}

	for _, prep := range preps {
		prep.Gov = w.Index
		prep.Dep = "case"
		// "especially on Mondays": adverbs attached to the preposition
		// move to the object
		if adv := prep.Dependent("advmod"); adv != nil {
			adv.Gov = w.Index
		}
	}
}

// prepChain walks the preposition chain above w and returns its head
// plus the prepositions, outermost first. A renamed dative (iobj) or an
// agent terminates the chain immediately.
func prepChain(w *ud.Word) (*ud.Word, []*ud.Word) {
	x := w.Governor()
	if x == nil {
		return nil, nil
	}

	if x.Dep == "iobj" || x.Dep == "agent" {
		return x.Governor(), []*ud.Word{x}
	}

	var preps []*ud.Word
	for x != nil && x.Dep == "prep" {
		preps = append(preps, x)
		x = x.Governor()
	}
	return x, preps
}

// pcompRule handles prepositional complements: multi-word conjunctions
// become fixed, complements of "be" become copula heads, the rest turn
// into adverbial clauses with the preposition demoted to case or mark.
func (c *Converter) pcompRule(w *ud.Word) {
	prep := w.Governor()
	if prep == nil {
		return
	}

	// "because of": an ADP completing an SCONJ is a fixed expression
	if w.Upos == "ADP" && prep.Upos == "SCONJ" {
		w.Dep = "fixed"
		return
	}

	gov := prep.Governor()
	if prep.Dep != "prep" || gov == nil {
		c.warnf("no prep dependency in: %s <-pcomp- %s", prep.Text, w.Text)
		return
	}

	if gov.Lemma == "be" {
		makeCopula(w, gov)
	} else {
		w.Dep = "advcl"
		w.Gov = gov.Index
		prep.Gov = w.Index
	}

	if prep.Upos == "SCONJ" {
		prep.Dep = "mark"
	} else {
		prep.Dep = "case"
	}

	// adverbs and the like still hanging off the preposition move to w
	redirectDependents(prep, w)
}

// compRule handles clausal complements of "be" (copula formation with
// the outer subject marked :outer) and of existing copulas, where an
// "it" subject signals a clausal subject.
func compRule(w *ud.Word) {
	gov := w.Governor()
	if gov == nil {
		return
	}

	subj := gov.Subject()
	if gov.Lemma == "be" {
		makeCopula(w, gov)
		if subj != nil {
			// avoid a double subject on the new head
			subj.Dep += ":outer"
		}
	} else if gov.Dependent("cop") != nil {
		if subj != nil && subj.Lemma == "it" {
			subj.Dep = "expl"
			w.Dep = "csubj"
		}
	}
}

// attrRule: attr marks the nominal object of "be". An existential
// subject keeps "be" as the head ("There is a ghost in the room"),
// otherwise the attribute heads a copula ("Mary is a doctor").
func (c *Converter) attrRule(w *ud.Word) {
	be := w.Governor()
	if be == nil || be.Lemma != "be" {
		name := "ROOT"
		if be != nil {
			name = be.Text
		}
		c.warnf("dep attr used with something other than to be: %s <-attr- %s", name, w.Text)
		return
	}

	if be.Dependent("expl") != nil {
		w.Dep = "nsubj"
		return
	}

	makeCopula(w, be)
}

// acompRule: adjectival complements of "be" head a copula, except for a
// perfect participle which is really a mis-tagged passive ("The speech
// was well received"). Off other verbs acomp is xcomp.
func acompRule(w *ud.Word) {
	gov := w.Governor()
	if gov == nil {
		return
	}

	if gov.Lemma == "be" {
		if w.Upos == "VERB" && w.Feats.Get("Aspect") == "Perf" {
			makePassive(gov, w)
		} else {
			makeCopula(w, gov)
		}
	} else {
		w.Dep = "xcomp"
	}
}

// advmodRule: the parser tags "when"/"where"/"how" SCONJ but attaches
// them with advmod. They are true subordinators only when the governing
// verb heads an adverbial clause; otherwise they are adverbs.
func advmodRule(w *ud.Word) {
	if w.Upos != "SCONJ" {
		return
	}

	gov := w.Governor()
	if gov != nil && gov.Dep == "advcl" {
		w.Dep = "mark"
	} else {
		w.Upos = "ADV"
	}
}

// npadvmodRule maps noun-phrase adverbial modifiers to obl:npmod and
// flattens npadvmod chains onto the common governor.
func npadvmodRule(w *ud.Word) {
	gov := w.Governor()
	if gov == nil {
		return
	}

	if gov.Dep == "obl:npmod" {
		if up := gov.Governor(); up != nil {
			gov = up
		}
	}
	w.Dep = "obl:npmod"
	w.Gov = gov.Index
}

// conjRule re-attaches the coordinating conjunction to the second
// conjunct, rewrites gapped clauses with orphan ("Mary won gold and
// Peter bronze") and flattens conjunct chains onto the first conjunct.
func conjRule(w *ud.Word) {
	gov := w.Governor()
	if gov == nil {
		return
	}

	cc := gov.Dependent("cc")
	if cc != nil {
		cc.Gov = w.Index
	}

	if gov.Upos == "VERB" && nominal[w.Upos] {
		if nsubj := w.Dependent("nsubj"); nsubj != nil {
			nsubj.Dep = "conj"
			nsubj.Gov = gov.Index
			w.Dep = "orphan"
			w.Gov = nsubj.Index
			if cc != nil {
				cc.Gov = nsubj.Index
			}
		}
	}

	if gov.Dep == "conj" {
		if up := gov.Governor(); up != nil {
			w.Gov = up.Index
		}
	}
}

// depRule: an unclassified dependency off a verb is most often a
// clausal complement.
func depRule(w *ud.Word) {
	gov := w.Governor()
	if gov != nil && gov.Upos == "VERB" {
		w.Dep = "ccomp"
	}
}

// fixAdvmodCop promotes adverbs over "be" into copula heads in a
// reverse pass, so that with several adverbs ("We are in here") the
// last one ends up heading the copula.
func (c *Converter) fixAdvmodCop(sent *ud.Sentence) {
	for i := len(sent.Words) - 1; i >= 0; i-- {
		w := sent.Words[i]
		if w.Dep != "advmod" {
			continue
		}
		gov := w.Governor()
		if gov != nil && gov.Lemma == "be" && gov.Dep != "cop" {
			makeCopula(w, gov)
		}
	}
}
