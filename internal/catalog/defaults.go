package catalog

// Default builds the built-in catalog of business-type and shop-type
// category templates.
func Default() *Catalog {
	shopTypes := []ShopTypeConfig{
		{
			Key:  "supermarket",
			Name: "Supermarket",
			DefaultCategories: []CategoryTemplate{
				{Name: "Beverages", Description: "Soft drinks, juices and water"},
				{Name: "Dairy", Description: "Milk, cheese and yoghurt products"},
				{Name: "Bakery", Description: "Bread and baked goods"},
				{Name: "Produce", Description: "Fresh fruits and vegetables"},
				{Name: "Frozen Foods", Description: "Frozen meals and ingredients"},
				{Name: "Snacks", Description: "Biscuits, chips and confectionery"},
				{Name: "Household Essentials", Description: "Cleaning and home supplies"},
			},
		},
		{
			Key:  "hardware",
			Name: "Hardware Store",
			DefaultCategories: []CategoryTemplate{
				{Name: "Hand Tools", Description: "Hammers, screwdrivers and wrenches"},
				{Name: "Power Tools", Description: "Drills, saws and grinders"},
				{Name: "Fasteners", Description: "Nails, screws and bolts"},
				{Name: "Plumbing", Description: "Pipes, fittings and fixtures"},
				{Name: "Electrical", Description: "Cables, switches and sockets"},
				{Name: "Paint & Finishes", Description: "Paints, varnishes and brushes"},
			},
		},
		{
			Key:  "boutique",
			Name: "Boutique",
			DefaultCategories: []CategoryTemplate{
				{Name: "Men's Wear", Description: "Clothing for men"},
				{Name: "Women's Wear", Description: "Clothing for women"},
				{Name: "Footwear", Description: "Shoes and sandals"},
				{Name: "Accessories", Description: "Belts, jewellery and watches"},
				{Name: "Bags", Description: "Handbags and backpacks"},
			},
		},
		{
			Key:  "electronics",
			Name: "Electronics Shop",
			DefaultCategories: []CategoryTemplate{
				{Name: "Phones & Tablets", Description: "Mobile phones and tablets"},
				{Name: "Computers", Description: "Laptops, desktops and peripherals"},
				{Name: "Audio & Video", Description: "Speakers, TVs and sound systems"},
				{Name: "Accessories & Cables", Description: "Chargers, cables and cases"},
				{Name: "Home Appliances", Description: "Fridges, fans and kitchen appliances"},
			},
		},
		{
			Key:  "bookstore",
			Name: "Bookstore",
			DefaultCategories: []CategoryTemplate{
				{Name: "Fiction", Description: "Novels and short stories"},
				{Name: "Non-Fiction", Description: "Biographies, history and reference"},
				{Name: "Children's Books", Description: "Books for young readers"},
				{Name: "Textbooks", Description: "Educational and academic titles"},
				{Name: "Stationery", Description: "Pens, notebooks and supplies"},
				{Name: "Magazines", Description: "Periodicals and journals"},
			},
		},
		{
			Key:  "cosmetics",
			Name: "Cosmetics Shop",
			DefaultCategories: []CategoryTemplate{
				{Name: "Skincare", Description: "Creams, lotions and cleansers"},
				{Name: "Haircare", Description: "Shampoos, relaxers and oils"},
				{Name: "Makeup", Description: "Foundation, lipstick and eye products"},
				{Name: "Fragrances", Description: "Perfumes and body sprays"},
				{Name: "Nail Care", Description: "Polishes and nail accessories"},
			},
		},
		{
			Key:  "stationery",
			Name: "Stationery Shop",
			DefaultCategories: []CategoryTemplate{
				{Name: "Writing Instruments", Description: "Pens, pencils and markers"},
				{Name: "Paper Products", Description: "Notebooks, envelopes and paper"},
				{Name: "Office Supplies", Description: "Staplers, files and organizers"},
				{Name: "Art Supplies", Description: "Paints, brushes and craft materials"},
			},
		},
	}

	byKey := make(map[string]ShopTypeConfig, len(shopTypes))
	order := make([]string, 0, len(shopTypes))
	for _, st := range shopTypes {
		byKey[st.Key] = st
		order = append(order, st.Key)
	}

	return &Catalog{
		shopTypes:     byKey,
		shopTypeOrder: order,
		printingPress: []CategoryTemplate{
			{Name: "Paper", Description: "Sheets, rolls and specialty paper stock"},
			{Name: "Ink & Toner", Description: "Printing inks, toners and cartridges"},
			{Name: "Printing Plates", Description: "Offset and digital printing plates"},
			{Name: "Binding Materials", Description: "Spirals, glues and binding covers"},
			{Name: "Lamination Films", Description: "Gloss and matte lamination rolls"},
			{Name: "Large Format Media", Description: "Banner, vinyl and canvas media"},
			{Name: "Finishing Supplies", Description: "Cutting, creasing and foiling supplies"},
			{Name: "Packaging Materials", Description: "Boxes, wraps and delivery packaging"},
			{Name: "Machine Spare Parts", Description: "Replacement parts for press machines"},
		},
		pharmacy: []CategoryTemplate{
			{Name: "Prescription Drugs", Description: "Medicines dispensed on prescription"},
			{Name: "Over-the-Counter Drugs", Description: "Medicines sold without prescription"},
			{Name: "First Aid", Description: "Bandages, antiseptics and dressings"},
			{Name: "Vitamins & Supplements", Description: "Nutritional and dietary supplements"},
			{Name: "Personal Care", Description: "Hygiene and grooming products"},
			{Name: "Baby Care", Description: "Infant formula, diapers and care items"},
			{Name: "Medical Devices", Description: "Thermometers, monitors and test kits"},
		},
		fallback: []CategoryTemplate{
			{Name: "General Merchandise", Description: "General stock items"},
			{Name: "Miscellaneous", Description: "Uncategorized items"},
		},
	}
}
