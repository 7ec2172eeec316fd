package convert

import "github.com/anatoleg/spacy-ud/ud"

// redirectRels are the relations allowed to move when a word's
// dependents are re-homed during copula or passive restructuring.
var redirectRels = map[string]bool{
	"prep":        true,
	"attr":        true,
	"advcl":       true,
	"advmod":      true,
	"acomp":       true,
	"xcomp":       true,
	"dep":         true,
	"acl":         true,
	"nsubj":       true,
	"obj":         true,
	"csubj":       true,
	"ccomp":       true,
	"mark":        true,
	"cop":         true,
	"npadvmod":    true,
	"conj":        true,
	"prataxis":    true,
	"punct":       true,
	"cc":          true,
	"nsubj:outer": true,
	"csubj:outer": true,
}

// makeCopula turns be-as-head into a UD copula: head takes over the
// position of be in the tree, be attaches to head with cop, and be's
// dependents move to head. Existential "there" predications are left
// alone; the return value reports whether the rewrite happened.
func makeCopula(head, be *ud.Word) bool {
	if expl := be.Dependent("expl"); expl != nil && expl.Lemma == "there" {
		return false
	}

	head.Gov = be.Gov
	head.Dep = be.Dep

	be.Gov = head.Index
	be.Dep = "cop"
	be.Upos = "AUX"

	redirectDependents(be, head)
	return true
}

// makePassive rewrites be+participle into a passive: the verb takes
// be's place, be becomes aux:pass and be's subject moves to the verb as
// nsubj:pass (or csubj:pass).
func makePassive(be, verb *ud.Word) {
	subj := be.Dependent("nsubj")
	rel := "nsubj:pass"
	if subj == nil {
		subj = be.Dependent("csubj")
		rel = "csubj:pass"
	}
	if subj != nil {
		subj.Gov = verb.Index
		subj.Dep = rel
	}

	verb.Gov = be.Gov
	verb.Dep = be.Dep

	be.Gov = verb.Index
	be.Dep = "aux:pass"
}

// redirectDependents moves the dependents of from onto to, limited to
// the relations in redirectRels.
func redirectDependents(from, to *ud.Word) {
	for _, w := range from.Sentence().Words {
		if w == from || w == to {
			continue
		}
		if w.Governor() == from && redirectRels[w.Dep] {
			w.Gov = to.Index
		}
	}
}
