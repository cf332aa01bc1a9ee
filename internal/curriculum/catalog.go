package curriculum

// Option is a single selectable entry at one level of the curriculum chain.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the static Ghana Standard-Based Curriculum hierarchy:
// class level -> grade -> subject -> strand -> sub-strand -> learning indicator.
// The data is versioned with the binary; there is no runtime mutation.
type Catalog struct {
	levels     []Option
	grades     map[string][]Option // level -> grades
	subjects   map[string][]Option // level -> subjects
	strands    map[string][]Option // subject -> strands
	subStrands map[string][]Option // strand -> sub-strands
	indicators map[string][]Option // sub-strand -> indicators
	manuals    []Manual
}

const (
	LevelJHS = "JHS"
	LevelSHS = "SHS"
)

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		levels:     levels,
		grades:     grades,
		subjects:   subjects,
		strands:    strands,
		subStrands: subStrands,
		indicators: indicators,
		manuals:    manuals,
	}
}

var levels = []Option{
	{ID: LevelJHS, Name: "JHS (Junior High School)"},
	{ID: LevelSHS, Name: "SHS (Senior High School)"},
}

var grades = map[string][]Option{
	LevelJHS: {
		{ID: "bs7", Name: "BS7"},
		{ID: "bs8", Name: "BS8"},
		{ID: "bs9", Name: "BS9"},
	},
	LevelSHS: {
		{ID: "shs1", Name: "SHS1"},
		{ID: "shs2", Name: "SHS2"},
		{ID: "shs3", Name: "SHS3"},
	},
}

var subjects = map[string][]Option{
	LevelJHS: {
		{ID: "sci_jhs", Name: "Science"},
		{ID: "math_jhs", Name: "Mathematics"},
		{ID: "eng_jhs", Name: "English Language"},
		{ID: "ss_jhs", Name: "Social Studies"},
	},
	LevelSHS: {
		{ID: "bio_shs", Name: "Biology"},
		{ID: "chem_shs", Name: "Chemistry"},
		{ID: "phy_shs", Name: "Physics"},
		{ID: "comp_shs", Name: "Computing"},
		{ID: "sci_shs", Name: "General Science"},
	},
}

var strands = map[string][]Option{
	"sci_jhs": {
		{ID: "b7", Name: "Diversity of Matter"},
		{ID: "b8", Name: "Cycles"},
		{ID: "b9", Name: "Systems"},
	},
	"math_jhs": {
		{ID: "m1", Name: "Number and Numeration"},
		{ID: "m2", Name: "Measurement"},
		{ID: "m3", Name: "Geometry"},
	},
	"comp_shs": {
		{ID: "comp1", Name: "Computer Architecture and Organisation"},
		{ID: "comp2", Name: "Computational Thinking (Programming Logic)"},
		{ID: "comp3", Name: "Computational Thinking (Web Development)"},
	},
	"phy_shs": {
		{ID: "phy1", Name: "Mechanics and Matter"},
		{ID: "phy2", Name: "Matter and Mechanics"},
		{ID: "phy3", Name: "Energy - Heat"},
		{ID: "phy4", Name: "Energy - Waves (Mirrors, Reflection, and Refraction)"},
		{ID: "phy5", Name: "Energy - Waves (Behaviour of Light Through Media)"},
		{ID: "phy6", Name: "Electromagnetism - Electrostatics and Magnetostatics"},
		{ID: "phy7", Name: "Electromagnetism - Analogue Electronics"},
		{ID: "phy8", Name: "Atomic and Nuclear Physics"},
	},
	"bio_shs": {
		{ID: "bio1", Name: "Introduction to Biology and Scientific Methods"},
		{ID: "bio2", Name: "Fish Farming, Processing and Conservation"},
		{ID: "bio3", Name: "Cell Biology"},
		{ID: "bio4", Name: "Organisms and Classification"},
		{ID: "bio5", Name: "Ecology"},
		{ID: "bio6", Name: "Diseases and Infections"},
		{ID: "bio7", Name: "Mammalian Systems"},
		{ID: "bio8", Name: "Plant Systems"},
	},
	"chem_shs": {
		{ID: "chem1", Name: "Physical Chemistry - Matter and Its Properties"},
		{ID: "chem2", Name: "Physical Chemistry - Equilibria"},
		{ID: "chem3", Name: "Systematic Chemistry of the Elements - Periodicity"},
		{ID: "chem4", Name: "Systematic Chemistry of the Elements - Bonding"},
		{ID: "chem5", Name: "Chemistry of Carbon Compounds - Characterisation of Organic Compounds"},
		{ID: "chem6", Name: "Chemistry of Carbon Compounds - Organic Functional Groups"},
	},
	"sci_shs": {
		{ID: "sci1", Name: "Exploring Materials - The Characteristics of Science"},
		{ID: "sci2", Name: "Exploring Materials - Solids and Binary Compounds"},
		{ID: "sci3", Name: "Processes for Living - Diffusion and Osmosis"},
		{ID: "sci4", Name: "Processes for Living - Reproduction in Plants and Humans"},
		{ID: "sci5", Name: "Vigour Behind Life - Solar Panels"},
		{ID: "sci6", Name: "Vigour Behind Life - Force"},
		{ID: "sci7", Name: "Vigour Behind Life - Basic Electronics"},
		{ID: "sci8", Name: "Relationships with the Environment - Promoting Health and Safety"},
		{ID: "sci9", Name: "Relationships with the Environment - Production in Local Industry"},
	},
}

var subStrands = map[string][]Option{
	"b7": {
		{ID: "b7_1", Name: "B7.1.3.4 - Photosynthesis in Green Plants"},
		{ID: "b7_2", Name: "B7.2.1.1 - States of Matter"},
		{ID: "b7_3", Name: "B7.3.2.2 - Chemical Reactions"},
	},
	"b8": {
		{ID: "b8_1", Name: "B8.1.1.1 - Water Cycle"},
		{ID: "b8_2", Name: "B8.2.3.1 - Carbon Cycle"},
	},
	"comp1": {
		{ID: "comp1_1", Name: "1.1: Data Storage and Manipulation"},
		{ID: "comp1_2", Name: "1.2: Computer Hardware and Software"},
		{ID: "comp1_3", Name: "1.3: Data Communication and Network Systems"},
	},
	"comp2": {
		{ID: "comp2_1", Name: "2.1: App Development"},
		{ID: "comp2_2", Name: "2.2: Algorithm and Data Structure"},
		{ID: "comp2_3", Name: "2.3: Data Types and Structures"},
		{ID: "comp2_4", Name: "2.4: Advanced Data Structures"},
		{ID: "comp2_5", Name: "2.5: Programming with Python"},
	},
	"comp3": {
		{ID: "comp3_1", Name: "3.1: Web Technologies and Databases"},
	},
	"phy1": {
		{ID: "phy1_1", Name: "Introduction to Physics"},
		{ID: "phy1_2", Name: "Matter"},
	},
	"phy2": {
		{ID: "phy2_1", Name: "Kinematics"},
		{ID: "phy2_2", Name: "Dynamics"},
		{ID: "phy2_3", Name: "Pressure"},
	},
	"phy3": {
		{ID: "phy3_1", Name: "Heat"},
	},
	"phy4": {
		{ID: "phy4_1", Name: "Waves - Reflection and Mirrors"},
	},
	"phy5": {
		{ID: "phy5_1", Name: "Waves - Refraction and Light Behavior"},
	},
	"phy6": {
		{ID: "phy6_1", Name: "Electrostatics"},
		{ID: "phy6_2", Name: "Magnetostatics"},
	},
	"phy7": {
		{ID: "phy7_1", Name: "Analogue Electronics"},
	},
	"phy8": {
		{ID: "phy8_1", Name: "Atomic Physics"},
		{ID: "phy8_2", Name: "Nuclear Physics"},
	},
	"sci1": {
		{ID: "sci1_1", Name: "Science and Materials in Nature - Characteristics of Science"},
	},
	"sci2": {
		{ID: "sci2_1", Name: "Science and Materials in Nature - Solids and Binary Compounds"},
	},
	"sci3": {
		{ID: "sci3_1", Name: "Essentials for Survival - Diffusion and Osmosis"},
	},
	"sci4": {
		{ID: "sci4_1", Name: "Essentials for Survival - Reproduction"},
	},
	"sci5": {
		{ID: "sci5_1", Name: "Powering the Future with Energy Forms - Solar Panels"},
	},
	"sci6": {
		{ID: "sci6_1", Name: "Forces Acting on Substances and Mechanisms"},
	},
	"sci7": {
		{ID: "sci7_1", Name: "Uses of Electronic Components in Household Electronic Devices"},
	},
	"sci8": {
		{ID: "sci8_1", Name: "The Human Body and Health"},
	},
	"sci9": {
		{ID: "sci9_1", Name: "Relationship with the Environment (Local Industry)"},
	},
	"bio1": {
		{ID: "bio1_1", Name: "Foundations of Biology"},
	},
	"bio2": {
		{ID: "bio2_1", Name: "Biology and Entrepreneurship"},
	},
	"bio3": {
		{ID: "bio3_1", Name: "Cell Structure and Function"},
	},
	"bio4": {
		{ID: "bio4_1", Name: "Ecology"},
	},
	"bio5": {
		{ID: "bio5_1", Name: "Ecology"},
	},
	"bio6": {
		{ID: "bio6_1", Name: "Diseases and Infections"},
	},
	"bio7": {
		{ID: "bio7_1", Name: "Mammalian Systems"},
	},
	"bio8": {
		{ID: "bio8_1", Name: "Plant Systems"},
	},
	"chem1": {
		{ID: "chem1_1", Name: "Introduction to Chemistry and Scientific Method"},
		{ID: "chem1_2", Name: "Concept of the Mole"},
		{ID: "chem1_3", Name: "Mole Ratios, Chemical Formulae and Equations"},
		{ID: "chem1_4", Name: "Kinetic Theory and States of Matter"},
	},
	"chem2": {
		{ID: "chem2_1", Name: "Solubility and Qualitative Analysis"},
	},
	"chem3": {
		{ID: "chem3_1", Name: "Periodic Properties"},
	},
	"chem4": {
		{ID: "chem4_1", Name: "Interatomic Bonding"},
		{ID: "chem4_2", Name: "Intermolecular Bonding"},
	},
	"chem5": {
		{ID: "chem5_1", Name: "Qualitative and Quantitative Analysis of Organic Compounds"},
	},
	"chem6": {
		{ID: "chem6_1", Name: "Classifications of Organic Compounds"},
	},
}

var indicators = map[string][]Option{
	"comp1_1": {
		{ID: "li_comp1_1_1", Name: "Describe data as bit pattern representations"},
		{ID: "li_comp1_1_2", Name: "Understand the use of Boolean logic and binary"},
		{ID: "li_comp1_1_3", Name: "Identify types and functions of computer memory"},
		{ID: "li_comp1_1_4", Name: "Explain the role of cache memory"},
		{ID: "li_comp1_1_5", Name: "Describe the memory hierarchy"},
		{ID: "li_comp1_1_6", Name: "Explain the role and functions of the CPU"},
		{ID: "li_comp1_1_7", Name: "Identify and describe the components of a CPU"},
		{ID: "li_comp1_1_8", Name: "Understand the machine cycle"},
		{ID: "li_comp1_1_9", Name: "Explain the CPU instruction set"},
		{ID: "li_comp1_1_10", Name: "Describe the concept and applications of embedded systems"},
	},
	"comp1_2": {
		{ID: "li_comp1_2_1", Name: "Identify and explain the functions of input devices"},
		{ID: "li_comp1_2_2", Name: "Identify and explain the functions of output devices"},
		{ID: "li_comp1_2_3", Name: "Classify and explain types of storage devices"},
		{ID: "li_comp1_2_4", Name: "Understand the concept and benefits of cloud storage"},
		{ID: "li_comp1_2_5", Name: "Identify different communication hardware devices"},
		{ID: "li_comp1_2_6", Name: "Understand the functions and components of the motherboard"},
		{ID: "li_comp1_2_7", Name: "Categorize and explain types of computer software"},
	},
	"comp1_3": {
		{ID: "li_comp1_3_1", Name: "Discuss the advantages of computer networks over stand-alone systems"},
		{ID: "li_comp1_3_2", Name: "Identify and describe components of a computer network"},
		{ID: "li_comp1_3_3", Name: "Differentiate between types of area networks (LAN, WAN, MAN)"},
		{ID: "li_comp1_3_4", Name: "Explain network topologies and their types"},
		{ID: "li_comp1_3_5", Name: "Compare different types of networks"},
		{ID: "li_comp1_3_6", Name: "Understand network architecture"},
		{ID: "li_comp1_3_7", Name: "Explain the concept and use of cloud networks"},
		{ID: "li_comp1_3_8", Name: "Understand the OSI model and its layers"},
		{ID: "li_comp1_3_9", Name: "Explain wireless data connections"},
		{ID: "li_comp1_3_10", Name: "Identify and explain types of wired transmission media"},
		{ID: "li_comp1_3_11", Name: "Compare wired and wireless networks"},
	},
	"comp2_1": {
		{ID: "li_comp2_1_1", Name: "Identify and describe the stages of the program development cycle"},
		{ID: "li_comp2_1_2", Name: "Understand program analysis"},
		{ID: "li_comp2_1_3", Name: "Learn program design techniques"},
		{ID: "li_comp2_1_4", Name: "Implement programming solutions"},
		{ID: "li_comp2_1_5", Name: "Test and debug programs"},
	},
	"comp2_2": {
		{ID: "li_comp2_2_1", Name: "Define and explain variables in programming"},
		{ID: "li_comp2_2_2", Name: "Describe an algorithm and its key characteristics with examples"},
		{ID: "li_comp2_2_3", Name: "Explain and provide examples of pseudocode"},
		{ID: "li_comp2_2_4", Name: "Explain and provide examples of flowcharts"},
	},
	"comp2_3": {
		{ID: "li_comp2_3_1", Name: "Identify and explain various data types with examples"},
		{ID: "li_comp2_3_2", Name: "Understand the importance of data structures in programming"},
		{ID: "li_comp2_3_3", Name: "Classify data structures (Linear vs Non-linear, Static vs Dynamic)"},
		{ID: "li_comp2_3_4", Name: "Describe arrays as a data structure"},
		{ID: "li_comp2_3_5", Name: "Distinguish between one-dimensional and two-dimensional arrays"},
		{ID: "li_comp2_3_6", Name: "Explain the advantages and disadvantages of arrays"},
	},
	"comp2_4": {
		{ID: "li_comp2_4_1", Name: "Describe linked lists: features, operations, types, examples, applications"},
		{ID: "li_comp2_4_2", Name: "Describe stacks: features, operations, types, examples, applications"},
		{ID: "li_comp2_4_3", Name: "Describe queues: features, operations, examples, applications, advantages"},
		{ID: "li_comp2_4_4", Name: "Identify and describe non-linear data structures (Binary trees, Graphs)"},
	},
	"comp2_5": {
		{ID: "li_comp2_5_1", Name: "Understand programming basics using Python"},
		{ID: "li_comp2_5_2", Name: "Translate simple algorithms with single variables into Python code"},
		{ID: "li_comp2_5_3", Name: "Implement and manipulate 1D arrays in Python"},
		{ID: "li_comp2_5_4", Name: "Use built-in list methods in Python"},
	},
	"comp3_1": {
		{ID: "li_comp3_1_1", Name: "Distinguish between web design and web development"},
		{ID: "li_comp3_1_2", Name: "Explain web development and build a basic website"},
		{ID: "li_comp3_1_3", Name: "Identify and describe components of a web page"},
		{ID: "li_comp3_1_4", Name: "Explain the role of a web designer"},
		{ID: "li_comp3_1_5", Name: "Create a web outline plan and describe the steps involved"},
		{ID: "li_comp3_1_6", Name: "Define and illustrate a sitemap"},
		{ID: "li_comp3_1_7", Name: "Explain web page wireframes: purpose and creation"},
		{ID: "li_comp3_1_8", Name: "Describe website prototypes: purpose, creation, and usage"},
		{ID: "li_comp3_1_9", Name: "Explain the advantages of using wireframes and prototypes"},
	},
	"b7_1": {
		{ID: "li_b7_1_1", Name: "Explain the process of photosynthesis"},
		{ID: "li_b7_1_2", Name: "Identify the raw materials for photosynthesis"},
		{ID: "li_b7_1_3", Name: "Describe the products of photosynthesis"},
	},
	"phy1_1": {
		{ID: "li_phy1_1_1", Name: "Applications of Physics in Various Sectors of the Economy"},
		{ID: "li_phy1_1_2", Name: "The Interplay of Mathematics and Physics"},
		{ID: "li_phy1_1_3", Name: "Basic and Derived Units"},
		{ID: "li_phy1_1_4", Name: "Dimension"},
		{ID: "li_phy1_1_5", Name: "Errors in the Use of Measuring Instruments"},
		{ID: "li_phy1_1_6", Name: "Errors in Measurement"},
		{ID: "li_phy1_1_7", Name: "Scientific Notations and Their Unit Multipliers"},
		{ID: "li_phy1_1_8", Name: "Scalars and Vectors"},
	},
	"phy1_2": {
		{ID: "li_phy1_2_1", Name: "States of Matter"},
		{ID: "li_phy1_2_2", Name: "Molecular Arrangement of the Various States of Matter"},
	},
	"phy2_1": {
		{ID: "li_phy2_1_1", Name: "Types of Motion"},
		{ID: "li_phy2_1_2", Name: "Equations of Motion"},
		{ID: "li_phy2_1_3", Name: "Representation of Motions of Objects Graphically"},
	},
	"phy2_2": {
		{ID: "li_phy2_2_1", Name: "Newton's Laws of Motion"},
		{ID: "li_phy2_2_2", Name: "Relationship Between Force, Mass, and Acceleration"},
	},
	"phy2_3": {
		{ID: "li_phy2_3_1", Name: "Pressure in a Fluid"},
		{ID: "li_phy2_3_2", Name: "Pascal's Principle"},
		{ID: "li_phy2_3_3", Name: "Brake Systems and Hydraulic Press"},
	},
	"phy3_1": {
		{ID: "li_phy3_1_1", Name: "Thermometric Substances"},
		{ID: "li_phy3_1_2", Name: "Thermometers"},
		{ID: "li_phy3_1_3", Name: "Temperature Scales"},
		{ID: "li_phy3_1_4", Name: "Relationship Between Temperature Scales"},
	},
	"phy4_1": {
		{ID: "li_phy4_1_1", Name: "Laws of Reflection"},
		{ID: "li_phy4_1_2", Name: "Image Formation in Plane Mirrors"},
		{ID: "li_phy4_1_3", Name: "Images Formed by Inclined Mirrors"},
		{ID: "li_phy4_1_4", Name: "Terminologies Associated with Spherical Mirrors"},
		{ID: "li_phy4_1_5", Name: "Characteristics of Image Formation in Spherical Mirrors"},
		{ID: "li_phy4_1_6", Name: "Laws of Refraction"},
	},
	"phy5_1": {
		{ID: "li_phy5_1_1", Name: "Refractive Index of a Medium"},
		{ID: "li_phy5_1_2", Name: "Total Internal Reflection"},
		{ID: "li_phy5_1_3", Name: "Relationship Between Real Depth, Apparent Depth, and Refractive Index"},
	},
	"phy6_1": {
		{ID: "li_phy6_1_1", Name: "Gold Leaf Electroscope"},
		{ID: "li_phy6_1_2", Name: "Electrons as Mobile Charge Carriers"},
		{ID: "li_phy6_1_3", Name: "Charge Carriers in Conductors, Semiconductors"},
		{ID: "li_phy6_1_4", Name: "Charge"},
		{ID: "li_phy6_1_5", Name: "Distribution of Charges on Surfaces"},
		{ID: "li_phy6_1_6", Name: "Positive and Negative Charges"},
		{ID: "li_phy6_1_7", Name: "Conservation of Charge"},
	},
	"phy6_2": {
		{ID: "li_phy6_2_1", Name: "Magnetic and Non-Magnetic Materials"},
		{ID: "li_phy6_2_2", Name: "Magnetic Field"},
		{ID: "li_phy6_2_3", Name: "Magnetisation and Demagnetisation"},
	},
	"phy7_1": {
		{ID: "li_phy7_1_1", Name: "N-Type and P-Type Semiconductors"},
		{ID: "li_phy7_1_2", Name: "P-N Junction Diodes"},
		{ID: "li_phy7_1_3", Name: "LEDs and Zener Diodes"},
		{ID: "li_phy7_1_4", Name: "Effect of Temperature Changes on Resistance"},
		{ID: "li_phy7_1_5", Name: "Transducer"},
		{ID: "li_phy7_1_6", Name: "Processes of Some Transducers"},
		{ID: "li_phy7_1_7", Name: "Bipolar Junction Transistor (BJT)"},
		{ID: "li_phy7_1_8", Name: "Transistor Biasing"},
		{ID: "li_phy7_1_9", Name: "Various Transistor Configurations"},
	},
	"phy8_1": {
		{ID: "li_phy8_1_1", Name: "Atomic Models and Their Limitations"},
		{ID: "li_phy8_1_2", Name: "Transition of an Electron"},
	},
	"phy8_2": {
		{ID: "li_phy8_2_1", Name: "The Structure of the Nucleus"},
		{ID: "li_phy8_2_2", Name: "Radioactivity"},
		{ID: "li_phy8_2_3", Name: "Balancing Nuclear Reactions"},
	},
	"sci1_1": {
		{ID: "li_sci1_1_1", Name: "Characteristics of Science in Nature"},
		{ID: "li_sci1_1_2", Name: "Designing Projects Using the Characteristics of Science"},
		{ID: "li_sci1_1_3", Name: "Application of the Characteristics of Science Where Appropriate"},
	},
	"sci2_1": {
		{ID: "li_sci2_1_1", Name: "Metals, Non-Metals, and Semi-Metals"},
		{ID: "li_sci2_1_2", Name: "Application of Properties of Different Solid Structures in Relation to Their Uses in Life"},
		{ID: "li_sci2_1_3", Name: "Relationship Between Binary Compounds, the Composition of Binary Compounds and the Names of Compounds"},
		{ID: "li_sci2_1_4", Name: "Naming of Binary Compounds"},
	},
	"sci3_1": {
		{ID: "li_sci3_1_1", Name: "Concepts of Diffusion and Its Application in Life"},
		{ID: "li_sci3_1_2", Name: "Osmosis and Its Application in Our Daily Life"},
	},
	"sci4_1": {
		{ID: "li_sci4_1_1", Name: "Reproduction in Plants"},
		{ID: "li_sci4_1_2", Name: "Female Reproductive System"},
		{ID: "li_sci4_1_3", Name: "Menstrual Cycle"},
	},
	"sci5_1": {
		{ID: "li_sci5_1_1", Name: "How Solar Panels Reduce the Reliance on Fossil Fuels in Ghana"},
		{ID: "li_sci5_1_2", Name: "How Solar Panels Are Set Up in Ghana"},
		{ID: "li_sci5_1_3", Name: "Advantages and Disadvantages of Solar Energy to the Economy of Ghana"},
	},
	"sci6_1": {
		{ID: "li_sci6_1_1", Name: "Identification and Explanation of Concepts Associated with Forces"},
	},
	"sci7_1": {
		{ID: "li_sci7_1_1", Name: "Uses of Electronic Components in Household Electronic Devices"},
	},
	"sci8_1": {
		{ID: "li_sci8_1_1", Name: "Hazards and How to Manage Them in the Environment"},
		{ID: "li_sci8_1_2", Name: "Causes, Effects and Prevention of Lifestyle Diseases"},
		{ID: "li_sci8_1_3", Name: "Recreational Drugs and the Negative Effects These Have on the Body and Society"},
	},
	"sci9_1": {
		{ID: "li_sci9_1_1", Name: "Production of Local Soap"},
		{ID: "li_sci9_1_2", Name: "Experiment to Produce Different Types of Soap"},
		{ID: "li_sci9_1_3", Name: "Identify the Science Underlying the Stages of Production"},
		{ID: "li_sci9_1_4", Name: "Science Processes in the Stages of Production of Kenkey"},
	},
	"bio1_1": {
		{ID: "li_bio1_1_1", Name: "Importance of Biology"},
		{ID: "li_bio1_1_2", Name: "Branches of Biology"},
		{ID: "li_bio1_1_3", Name: "Fields of Work Related to Biology"},
		{ID: "li_bio1_1_4", Name: "The Scientific Method"},
		{ID: "li_bio1_1_5", Name: "Steps/Techniques Used in the Scientific Method"},
		{ID: "li_bio1_1_6", Name: "Symmetry, Orientation, and Sectioning"},
		{ID: "li_bio1_1_7", Name: "Types of Microscopes and Functions of the Light Microscope"},
		{ID: "li_bio1_1_8", Name: "Caring for a Light Microscope and Slides"},
	},
	"bio2_1": {
		{ID: "li_bio2_1_1", Name: "Biological Practices and Tools Used in Fish Farming"},
		{ID: "li_bio2_1_2", Name: "Harvesting, Processing and Marketing Fish"},
		{ID: "li_bio2_1_3", Name: "Fish Stock Management and Conservation"},
	},
	"bio3_1": {
		{ID: "li_bio3_1_1", Name: "Introduction to the Cell Membrane"},
		{ID: "li_bio3_1_2", Name: "Movement of Substances Through the Cell Membrane"},
	},
	"bio4_1": {
		{ID: "li_bio4_1_1", Name: "Biological Keys: Making and Using Them"},
		{ID: "li_bio4_1_2", Name: "Classification of Lower Organisms"},
		{ID: "li_bio4_1_3", Name: "Major Taxa in Hierarchical Classification"},
		{ID: "li_bio4_1_4", Name: "Binomial Nomenclature"},
		{ID: "li_bio4_1_5", Name: "Life Processes and Economic Importance of Lower Organisms"},
	},
	"bio5_1": {
		{ID: "li_bio5_1_1", Name: "Definition of Ecology and Related Terms"},
		{ID: "li_bio5_1_2", Name: "Ecological Concepts in Major Habitats"},
		{ID: "li_bio5_1_3", Name: "Interdependency of Living Organisms"},
		{ID: "li_bio5_1_4", Name: "Outcomes of Interdependency in the Environment"},
		{ID: "li_bio5_1_5", Name: "Ecological Tools for Estimating Population Size and Density"},
		{ID: "li_bio5_1_6", Name: "Energy Flow Determination Methods"},
		{ID: "li_bio5_1_7", Name: "Ecological Pyramids"},
		{ID: "li_bio5_1_8", Name: "Relevance of Energy Flow Determination Methods"},
	},
	"bio6_1": {
		{ID: "li_bio6_1_1", Name: "Common Diseases: Causative Organisms"},
		{ID: "li_bio6_1_2", Name: "Common Diseases: Transmission Cycles"},
		{ID: "li_bio6_1_3", Name: "Common Diseases: Effects and Control/Prevention"},
	},
	"bio7_1": {
		{ID: "li_bio7_1_1", Name: "External Organs/Features and Their Functions"},
		{ID: "li_bio7_1_2", Name: "Internal Organs/Features and Their Functions"},
		{ID: "li_bio7_1_3", Name: "Sensory Organs and Their Functions"},
		{ID: "li_bio7_1_4", Name: "Digestive Systems and Associated Organs in Different Animals"},
	},
	"bio8_1": {
		{ID: "li_bio8_1_1", Name: "Morphology of Flowering Plants"},
		{ID: "li_bio8_1_2", Name: "Distinguishing Features of Angiosperms"},
		{ID: "li_bio8_1_3", Name: "Distinctions Between Monocotyledons and Dicotyledons"},
		{ID: "li_bio8_1_4", Name: "Internal Structures and Functions of Plant Parts"},
		{ID: "li_bio8_1_5", Name: "Factors Affecting Growth and Development in Flowering Plants"},
	},
	"chem1_1": {
		{ID: "li_chem1_1_1", Name: "Introduction to Chemistry and Scientific Method"},
		{ID: "li_chem1_1_2", Name: "Concept of the Mole"},
		{ID: "li_chem1_1_3", Name: "Mole Ratios, Chemical Formulae and Equations"},
		{ID: "li_chem1_1_4", Name: "Kinetic Theory and States of Matter"},
	},
	"chem1_2": {
		{ID: "li_chem1_2_1", Name: "Solubility and Qualitative Analysis"},
	},
	"chem1_3": {
		{ID: "li_chem1_3_1", Name: "Periodic Properties"},
	},
	"chem1_4": {
		{ID: "li_chem1_4_1", Name: "Interatomic Bonding"},
		{ID: "li_chem1_4_2", Name: "Intermolecular Bonding"},
	},
	"chem2_1": {
		{ID: "li_chem2_1_1", Name: "Solubility and Qualitative Analysis"},
	},
	"chem3_1": {
		{ID: "li_chem3_1_1", Name: "Periodic Properties"},
	},
	"chem4_1": {
		{ID: "li_chem4_1_1", Name: "Interatomic Bonding"},
		{ID: "li_chem4_1_2", Name: "Intermolecular Bonding"},
	},
	"chem4_2": {
		{ID: "li_chem4_2_1", Name: "Intermolecular Bonding"},
	},
	"chem5_1": {
		{ID: "li_chem5_1_1", Name: "Qualitative and Quantitative Analysis of Organic Compounds"},
	},
	"chem6_1": {
		{ID: "li_chem6_1_1", Name: "Classifications of Organic Compounds"},
	},
}
