package hackathon

// NameSpace is the ordered cross product of product and customer names.
// Products form the outer loop and customers the inner one.
type NameSpace struct {
	products  []string
	customers []string
}

// NewNameSpace builds a name space. The slices are not copied and must not
// be modified afterwards; producers share them read-only.
func NewNameSpace(products, customers []string) NameSpace {
	return NameSpace{products: products, customers: customers}
}

// Size returns |products| * |customers|.
func (n NameSpace) Size() int {
	return len(n.products) * len(n.customers)
}

// IdeaName returns the name at global index i. Indices past Size wrap around.
func (n NameSpace) IdeaName(i int) string {
	k := i % n.Size()
	return n.products[k/len(n.customers)] + " for " + n.customers[k%len(n.customers)]
}

// PackageNames is a read-only list of package names reused cyclically.
type PackageNames []string

// At returns the package name at global index i, wrapping around.
func (p PackageNames) At(i int) string {
	return p[i%len(p)]
}
