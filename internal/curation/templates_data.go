package curation

// Curated NEET question templates, grouped by topic category.

var cellBiologyBucket = Bucket{
	Name: "cellBiology",
	Templates: []Template{
		{
			Text:          "Which organelle is known as the 'powerhouse of the cell'?",
			Options:       []string{"Nucleus", "Mitochondria", "Ribosome", "Golgi apparatus"},
			CorrectAnswer: "B",
			Explanation:   "Mitochondria produce ATP through cellular respiration, providing energy for all cellular activities.",
		},
		{
			Text:          "The cell wall of plant cells is primarily composed of:",
			Options:       []string{"Cellulose", "Chitin", "Peptidoglycan", "Protein"},
			CorrectAnswer: "A",
			Explanation:   "Plant cell walls are made of cellulose, a polysaccharide that provides structural support.",
		},
		{
			Text:          "Which structure controls the entry and exit of materials in a cell?",
			Options:       []string{"Cell wall", "Plasma membrane", "Nuclear membrane", "Cytoplasm"},
			CorrectAnswer: "B",
			Explanation:   "The plasma membrane is selectively permeable and regulates what enters and exits the cell.",
		},
		{
			Text:          "Ribosomes are the site of:",
			Options:       []string{"DNA replication", "Protein synthesis", "Lipid synthesis", "Photosynthesis"},
			CorrectAnswer: "B",
			Explanation:   "Ribosomes translate mRNA into proteins through the process of translation.",
		},
		{
			Text:          "Which organelle contains digestive enzymes?",
			Options:       []string{"Mitochondria", "Chloroplast", "Lysosome", "Peroxisome"},
			CorrectAnswer: "C",
			Explanation:   "Lysosomes contain hydrolytic enzymes that break down cellular waste and foreign materials.",
		},
	},
}

var geneticsBucket = Bucket{
	Name: "genetics",
	Templates: []Template{
		{
			Text:          "The basic unit of heredity is:",
			Options:       []string{"Chromosome", "Gene", "DNA", "Allele"},
			CorrectAnswer: "B",
			Explanation:   "A gene is the basic physical and functional unit of heredity, consisting of DNA sequences.",
		},
		{
			Text:          "In humans, the sex of a child is determined by:",
			Options:       []string{"Mother's X chromosome", "Father's X or Y chromosome", "Both parents equally", "Random chance"},
			CorrectAnswer: "B",
			Explanation:   "The father contributes either X or Y chromosome, determining the child's sex (XX=female, XY=male).",
		},
		{
			Text:          "A cross between two heterozygous individuals (Aa × Aa) produces offspring in the ratio:",
			Options:       []string{"1:1", "3:1", "1:2:1", "9:3:3:1"},
			CorrectAnswer: "C",
			Explanation:   "The genotypic ratio is 1 AA : 2 Aa : 1 aa, while phenotypic ratio is 3:1 (dominant:recessive).",
			Steps: []string{
				"Write the cross: Aa × Aa",
				"Gametes from each parent: A and a",
				"Punnett square gives AA, Aa, Aa, aa",
				"Genotypic ratio is therefore 1:2:1",
			},
		},
		{
			Text:          "The process by which DNA makes a copy of itself is called:",
			Options:       []string{"Transcription", "Translation", "Replication", "Mutation"},
			CorrectAnswer: "C",
			Explanation:   "DNA replication is the process of producing two identical DNA molecules from one original DNA molecule.",
		},
		{
			Text:          "Which of the following is a sex-linked disorder?",
			Options:       []string{"Sickle cell anemia", "Hemophilia", "Albinism", "Phenylketonuria"},
			CorrectAnswer: "B",
			Explanation:   "Hemophilia is a sex-linked recessive disorder carried on the X chromosome.",
		},
	},
}

var humanPhysiologyBucket = Bucket{
	Name: "humanPhysiology",
	Templates: []Template{
		{
			Text:          "The normal pH of human blood is:",
			Options:       []string{"6.8-7.0", "7.0-7.2", "7.35-7.45", "7.5-7.8"},
			CorrectAnswer: "C",
			Explanation:   "Normal blood pH is maintained between 7.35-7.45, slightly alkaline.",
		},
		{
			Text:          "Which blood cells are responsible for blood clotting?",
			Options:       []string{"RBC", "WBC", "Platelets", "Plasma cells"},
			CorrectAnswer: "C",
			Explanation:   "Platelets (thrombocytes) play a crucial role in blood clotting and wound healing.",
		},
		{
			Text:          "The functional unit of the kidney is:",
			Options:       []string{"Neuron", "Nephron", "Alveoli", "Villus"},
			CorrectAnswer: "B",
			Explanation:   "Nephron is the structural and functional unit of the kidney, responsible for filtration.",
		},
		{
			Text:          "Which hormone regulates blood sugar levels?",
			Options:       []string{"Thyroxine", "Insulin", "Adrenaline", "Growth hormone"},
			CorrectAnswer: "B",
			Explanation:   "Insulin, produced by pancreatic beta cells, lowers blood glucose levels.",
		},
		{
			Text:          "The pacemaker of the heart is:",
			Options:       []string{"SA node", "AV node", "Bundle of His", "Purkinje fibers"},
			CorrectAnswer: "A",
			Explanation:   "The sinoatrial (SA) node initiates the heartbeat and is called the natural pacemaker.",
		},
	},
}

var plantPhysiologyBucket = Bucket{
	Name: "plantPhysiology",
	Templates: []Template{
		{
			Text:          "Photosynthesis occurs in which organelle?",
			Options:       []string{"Mitochondria", "Chloroplast", "Nucleus", "Ribosome"},
			CorrectAnswer: "B",
			Explanation:   "Chloroplasts contain chlorophyll and are the site of photosynthesis in plant cells.",
		},
		{
			Text:          "The raw materials for photosynthesis are:",
			Options:       []string{"CO₂ and H₂O", "O₂ and H₂O", "CO₂ and O₂", "Glucose and O₂"},
			CorrectAnswer: "A",
			Explanation:   "Plants use carbon dioxide and water in the presence of light to produce glucose and oxygen.",
		},
		{
			Text:          "Stomata are mainly found on:",
			Options:       []string{"Roots", "Stems", "Leaves", "Flowers"},
			CorrectAnswer: "C",
			Explanation:   "Stomata are tiny pores mainly on the lower surface of leaves for gas exchange.",
		},
		{
			Text:          "Transpiration is the loss of water through:",
			Options:       []string{"Roots", "Stomata", "Flowers", "Seeds"},
			CorrectAnswer: "B",
			Explanation:   "Transpiration is the evaporation of water from plant surfaces, mainly through stomata.",
		},
		{
			Text:          "Which pigment is responsible for photosynthesis?",
			Options:       []string{"Carotene", "Xanthophyll", "Chlorophyll", "Anthocyanin"},
			CorrectAnswer: "C",
			Explanation:   "Chlorophyll (mainly chlorophyll a and b) is the primary pigment for photosynthesis.",
		},
	},
}

var ecologyBucket = Bucket{
	Name: "ecology",
	Templates: []Template{
		{
			Text:          "The study of interactions between organisms and their environment is called:",
			Options:       []string{"Genetics", "Ecology", "Taxonomy", "Morphology"},
			CorrectAnswer: "B",
			Explanation:   "Ecology is the branch of biology that studies the relationships between organisms and their environment.",
		},
		{
			Text:          "Which of the following is a producer in an ecosystem?",
			Options:       []string{"Deer", "Lion", "Green plants", "Fungi"},
			CorrectAnswer: "C",
			Explanation:   "Green plants are producers (autotrophs) that make their own food through photosynthesis.",
		},
		{
			Text:          "The flow of energy in an ecosystem is:",
			Options:       []string{"Cyclic", "Unidirectional", "Bidirectional", "Random"},
			CorrectAnswer: "B",
			Explanation:   "Energy flows in one direction from producers to consumers and is lost as heat at each level.",
		},
		{
			Text:          "Which gas is primarily responsible for global warming?",
			Options:       []string{"Oxygen", "Nitrogen", "Carbon dioxide", "Hydrogen"},
			CorrectAnswer: "C",
			Explanation:   "Carbon dioxide is the primary greenhouse gas contributing to global warming.",
		},
		{
			Text:          "The maximum number of individuals that an environment can support is called:",
			Options:       []string{"Population density", "Carrying capacity", "Birth rate", "Growth rate"},
			CorrectAnswer: "B",
			Explanation:   "Carrying capacity is the maximum population size that an environment can sustain indefinitely.",
		},
	},
}

var evolutionBucket = Bucket{
	Name: "evolution",
	Templates: []Template{
		{
			Text:          "Who proposed the theory of natural selection?",
			Options:       []string{"Lamarck", "Darwin", "Mendel", "Watson"},
			CorrectAnswer: "B",
			Explanation:   "Charles Darwin proposed the theory of evolution by natural selection in 'On the Origin of Species'.",
		},
		{
			Text:          "Homologous organs indicate:",
			Options:       []string{"Convergent evolution", "Divergent evolution", "Parallel evolution", "No evolution"},
			CorrectAnswer: "B",
			Explanation:   "Homologous organs have similar structure but different functions, indicating divergent evolution.",
		},
		{
			Text:          "Vestigial organs in humans include:",
			Options:       []string{"Heart", "Appendix", "Liver", "Kidney"},
			CorrectAnswer: "B",
			Explanation:   "The appendix is a vestigial organ with no significant function in modern humans.",
		},
		{
			Text:          "The process by which new species arise is called:",
			Options:       []string{"Mutation", "Speciation", "Adaptation", "Migration"},
			CorrectAnswer: "B",
			Explanation:   "Speciation is the evolutionary process by which populations evolve to become distinct species.",
		},
		{
			Text:          "Fossils are evidence of:",
			Options:       []string{"Current biodiversity", "Evolution", "Extinction only", "Adaptation only"},
			CorrectAnswer: "B",
			Explanation:   "Fossils provide direct evidence of evolution and the history of life on Earth.",
		},
	},
}

var physicsBucket = Bucket{
	Name: "physicsGeneral",
	Templates: []Template{
		{
			Text:          "A force of 10 N acts on a body of mass 2 kg. What is its acceleration?",
			Options:       []string{"2 m/s²", "5 m/s²", "10 m/s²", "20 m/s²"},
			CorrectAnswer: "B",
			Explanation:   "Using F = ma, acceleration a = F/m = 10/2 = 5 m/s²",
			Steps: []string{
				"Recall Newton's second law: F = ma",
				"Rearrange for acceleration: a = F/m",
				"Substitute values: a = 10 N / 2 kg = 5 m/s²",
			},
		},
		{
			Text:          "The SI unit of force is:",
			Options:       []string{"Joule", "Newton", "Watt", "Pascal"},
			CorrectAnswer: "B",
			Explanation:   "Newton (N) is the SI unit of force, defined as kg⋅m/s²",
		},
		{
			Text:          "Work done is maximum when the angle between force and displacement is:",
			Options:       []string{"0°", "45°", "90°", "180°"},
			CorrectAnswer: "A",
			Explanation:   "Work = F⋅d⋅cosθ is maximum when θ = 0° (cos0° = 1)",
		},
		{
			Text:          "The dimensional formula of energy is:",
			Options:       []string{"[ML²T⁻²]", "[MLT⁻²]", "[ML²T⁻¹]", "[MLT⁻¹]"},
			CorrectAnswer: "A",
			Explanation:   "Energy has dimensions of [ML²T⁻²], same as work",
		},
		{
			Text:          "Which of the following is a scalar quantity?",
			Options:       []string{"Force", "Velocity", "Acceleration", "Energy"},
			CorrectAnswer: "D",
			Explanation:   "Energy has only magnitude, no direction, making it a scalar quantity",
		},
	},
}

var chemistryBucket = Bucket{
	Name: "chemistryGeneral",
	Templates: []Template{
		{
			Text:          "The atomic number of an element represents:",
			Options:       []string{"Number of neutrons", "Number of protons", "Number of electrons in outer shell", "Mass number"},
			CorrectAnswer: "B",
			Explanation:   "Atomic number is the number of protons in the nucleus of an atom",
		},
		{
			Text:          "Which of the following is a noble gas?",
			Options:       []string{"Nitrogen", "Oxygen", "Helium", "Hydrogen"},
			CorrectAnswer: "C",
			Explanation:   "Helium is a noble gas with completely filled electron shells",
		},
		{
			Text:          "The pH of a neutral solution is:",
			Options:       []string{"0", "7", "14", "1"},
			CorrectAnswer: "B",
			Explanation:   "A neutral solution has pH = 7 at 25°C",
		},
		{
			Text:          "Which type of bond is formed by sharing of electrons?",
			Options:       []string{"Ionic bond", "Covalent bond", "Metallic bond", "Hydrogen bond"},
			CorrectAnswer: "B",
			Explanation:   "Covalent bonds are formed by mutual sharing of electrons between atoms",
		},
		{
			Text:          "The valency of carbon is:",
			Options:       []string{"2", "3", "4", "5"},
			CorrectAnswer: "C",
			Explanation:   "Carbon has 4 valence electrons and can form 4 covalent bonds",
		},
	},
}

// AllBuckets lists every template bucket, used by data-sanity tests.
func AllBuckets() []Bucket {
	return []Bucket{
		cellBiologyBucket,
		geneticsBucket,
		humanPhysiologyBucket,
		plantPhysiologyBucket,
		ecologyBucket,
		evolutionBucket,
		physicsBucket,
		chemistryBucket,
	}
}
