package reference

import (
	"fmt"
	"strings"

	"github.com/examgenius/exam-platform/internal/curriculum"
)

// Excerpt content for the manuals that have been digitised so far. The
// remaining volumes fall back to genericManualText until their PDFs are
// extracted.
//
// TODO: replace these embedded excerpts with full PDF extraction once the
// manual ingestion job lands.

const computingBook1Text = `SHS 1 COMPUTING TEACHER'S MANUAL - BOOK 1

STRAND: Computer Architecture and Organisation

SUB-STRAND: Data Storage and Manipulation

CONTENT:

1. DATA AS BIT PATTERNS
- All data in a computer is represented as patterns of bits (binary digits)
- A bit is the smallest unit of data, holding either 0 or 1
- Eight bits form a byte; bytes encode characters, numbers and instructions
- Boolean logic (AND, OR, NOT) operates directly on bit patterns

2. COMPUTER MEMORY
- Primary memory: RAM (volatile, working storage) and ROM (non-volatile, firmware)
- Cache memory: small, fast memory between the CPU and main memory
- The memory hierarchy trades capacity for speed: registers, cache, RAM, secondary storage

3. THE CENTRAL PROCESSING UNIT
- Components: Arithmetic Logic Unit (ALU), Control Unit (CU), registers
- The ALU performs arithmetic and logical operations
- The Control Unit fetches, decodes and coordinates instruction execution
- The instruction set defines the operations a CPU can perform

4. THE MACHINE CYCLE
- Fetch: retrieve the next instruction from memory
- Decode: interpret the instruction
- Execute: carry out the operation
- Store: write results back to memory or registers

5. EMBEDDED SYSTEMS
- Dedicated computer systems built into larger devices
- Examples: washing machines, car engine controllers, medical monitors

The CPU follows the fetch-decode-execute cycle to process instructions.`

const computingBook2Text = `SHS 1 COMPUTING TEACHER'S MANUAL - BOOK 2

STRAND: Computational Thinking (Programming Logic and Web Development)

CONTENT:

1. PROGRAM DEVELOPMENT CYCLE
- Analysis: understand and define the problem
- Design: plan the solution using algorithms, pseudocode and flowcharts
- Implementation: translate the design into program code
- Testing and debugging: find and fix errors
- Maintenance: keep the program useful as requirements change

2. ALGORITHMS AND VARIABLES
- A variable is a named storage location whose value can change
- An algorithm is a finite, ordered set of unambiguous steps to solve a problem
- Pseudocode expresses an algorithm in structured plain language
- Flowcharts express an algorithm as diagram symbols joined by arrows

3. DATA TYPES AND STRUCTURES
- Common data types: integer, real, character, string, Boolean
- Data structures organise data for efficient access and modification
- Linear structures: arrays, linked lists, stacks, queues
- Non-linear structures: binary trees, graphs
- Arrays hold elements of one type at contiguous, indexed positions

4. PROGRAMMING WITH PYTHON
- Python lists implement dynamic one-dimensional arrays
- Built-in list methods: append, insert, remove, pop, sort, reverse
- Simple algorithms with single variables translate directly into Python statements

5. WEB TECHNOLOGIES AND DATABASES
- Web design concerns appearance and layout; web development concerns construction
- Web page components: header, navigation, content area, footer
- Planning tools: web outline plans, sitemaps, wireframes, prototypes
- Databases: tables hold records and fields
- Queries: commands to retrieve specific data
- Relationships: connections between different tables`

var physicsBook1Sections = map[string]string{
	"phy1": `1. MECHANICS AND MATTER
Basic and Derived Units:
- SI base units: metre, kilogram, second, ampere, kelvin, mole, candela
- Derived units are combinations of base units (newton, joule, pascal)
- Dimensional analysis checks the consistency of physical equations

Measurement and Errors:
- Systematic errors shift all readings the same way (zero error, calibration)
- Random errors scatter readings about the true value
- Scientific notation and unit multipliers express very large and small quantities

Scalars and Vectors:
- Scalars have magnitude only (mass, speed, energy)
- Vectors have magnitude and direction (displacement, velocity, force)

States of Matter:
- Solids: fixed shape and volume, particles vibrate about fixed positions
- Liquids: fixed volume, take the shape of the container
- Gases: fill the container, particles move freely at high speed`,
	"phy2": `1. KINEMATICS AND DYNAMICS
Types of Motion:
- Translational, rotational, oscillatory and random motion
- Equations of motion for uniform acceleration: v = u + at, s = ut + ½at², v² = u² + 2as
- Displacement-time and velocity-time graphs represent motion visually

Newton's Laws of Motion:
- First law: a body remains at rest or in uniform motion unless acted on by a net force
- Second law: F = ma, force equals mass times acceleration
- Third law: action and reaction are equal and opposite

Pressure:
- Pressure is force per unit area, P = F/A, measured in pascals
- Pressure in a fluid increases with depth: P = ρgh
- Pascal's principle: pressure applied to an enclosed fluid is transmitted equally
- Applications: hydraulic press, car brake systems`,
	"phy3": `1. HEAT
Thermometric Substances:
- Substances whose measurable properties change uniformly with temperature
- Examples: mercury, alcohol, platinum wire, thermocouple junctions

Thermometers:
- Liquid-in-glass, resistance, thermocouple and gas thermometers
- Each exploits one thermometric property over a working range

Temperature Scales:
- Celsius: ice point 0 °C, steam point 100 °C
- Kelvin: absolute scale, 0 K at absolute zero
- Fahrenheit: ice point 32 °F, steam point 212 °F
- Conversions: T(K) = t(°C) + 273.15, t(°F) = 9/5 t(°C) + 32`,
	"phy4": `1. WAVES - REFLECTION AND MIRRORS
Laws of Reflection:
- The incident ray, reflected ray and normal lie in the same plane
- The angle of incidence equals the angle of reflection

Plane Mirrors:
- Images are virtual, upright, laterally inverted and the same size as the object
- Image distance behind the mirror equals object distance in front
- Inclined mirrors at angle θ form (360/θ - 1) images

Spherical Mirrors:
- Terminology: pole, centre of curvature, principal axis, focal point, focal length
- Concave mirrors form real or virtual images depending on object position
- Convex mirrors always form virtual, diminished, upright images
- Mirror formula: 1/f = 1/u + 1/v

Laws of Refraction:
- The incident ray, the refracted ray, and the normal to the surface at the point of incidence all lie in the same plane
- Snell's Law: n₁sin(θ₁) = n₂sin(θ₂) (where n₁ and n₂ are refractive indices, θ₁ is angle of incidence, θ₂ is angle of refraction)`,
}

var physicsBook2Sections = map[string]string{
	"phy5": `1. WAVES - REFRACTION AND LIGHT BEHAVIOR
Refractive Index:
- Refractive index (n) is the ratio of the speed of light in vacuum to the speed of light in a medium
- n = c/v (where c is speed of light in vacuum, v is speed of light in medium)
- n = sin(i)/sin(r) (where i is angle of incidence, r is angle of refraction)
- Refractive index determines how much light bends when entering a medium

Total Internal Reflection:
- Occurs when light traveling from a denser to a less dense medium strikes the boundary at an angle greater than the critical angle
- Critical angle: The angle of incidence that produces an angle of refraction of 90°
- sin(critical angle) = n₂/n₁ (where n₁ is refractive index of denser medium, n₂ is refractive index of less dense medium)
- Applications: Fiber optics, prisms, diamond brilliance

Real and Apparent Depth:
- Apparent depth is less than real depth due to refraction
- Relationship: Apparent depth = Real depth / Refractive index
- This creates the illusion that objects underwater appear closer to the surface than they actually are`,
	"phy6": `1. ELECTROSTATICS
Gold Leaf Electroscope:
- Instrument used to detect electric charge and potential
- Components: Metal cap, metal rod, gold leaf, insulated case
- Operation: When charged, the gold leaf deflects due to repulsion of like charges

Electrons as Mobile Charge Carriers:
- Electrons carry negative charge and can move freely in conductors
- Current is the flow of these mobile electrons

Charge Carriers:
- Conductors: Free electrons
- Semiconductors: Electrons and holes
- Electrolytes: Positive and negative ions

Charge Properties:
- Measured in coulombs (C)
- Like charges repel, unlike charges attract
- Charge is quantized and conserved: it cannot be created or destroyed, only transferred
- Charges distribute themselves on the outer surface of a conductor

2. MAGNETOSTATICS
Magnetic and Non-Magnetic Materials:
- Ferromagnetic: Strongly attracted to magnets (iron, nickel, cobalt)
- Paramagnetic: Weakly attracted to magnets (aluminum, platinum)
- Diamagnetic: Weakly repelled by magnets (copper, gold, water)

Magnetic Field:
- Region around a magnet where its influence can be detected
- Represented by field lines running from north to south pole, measured in tesla (T)

Magnetization and Demagnetization:
- Magnetization: Aligning magnetic domains (stroking with a magnet, electric current)
- Demagnetization: Randomizing domains (heating above Curie temperature, hammering, alternating current)`,
	"phy7": `1. ANALOGUE ELECTRONICS
Semiconductors:
- N-Type: Silicon or germanium doped with pentavalent impurities (e.g., phosphorus); majority carriers are electrons
- P-Type: Silicon or germanium doped with trivalent impurities (e.g., boron); majority carriers are holes

P-N Junction Diodes:
- Created by joining p-type and n-type semiconductors, forming a depletion region
- Allows current to flow in one direction only (forward bias)
- Applications: Rectification, signal detection, voltage regulation

Special Diodes:
- LED (Light Emitting Diode): Emits light when forward biased
- Zener Diode: Designed to operate in reverse breakdown region for voltage regulation

Effect of Temperature on Resistance:
- In metals: Resistance increases with temperature
- In semiconductors: Resistance decreases with temperature

Transducers:
- Devices that convert one form of energy to another
- Microphone: Converts sound to electrical signals
- Thermistor: Changes resistance with temperature
- Photoresistor: Changes resistance with light intensity

Bipolar Junction Transistor (BJT):
- Three-layer semiconductor device (PNP or NPN) with emitter, base, collector terminals
- Small base current controls larger collector current; current gain β = Ic/Ib
- Biasing establishes the operating point; configurations: common emitter, common collector, common base`,
	"phy8": `1. ATOMIC PHYSICS
Atomic Models:
- Dalton's model: Atoms as indivisible particles
- Thomson's "plum pudding" model: Electrons embedded in a positive sphere
- Rutherford's nuclear model: Dense, positive nucleus with electrons orbiting
- Bohr's model: Electrons in fixed energy levels or shells

Limitations of Models:
- Rutherford: Couldn't explain atomic stability
- Bohr: Only worked well for hydrogen

Electron Transitions:
- Electrons move between quantized energy levels by absorbing or emitting energy
- Energy of emitted photon = energy difference between levels (E = hf)

2. NUCLEAR PHYSICS
Structure of the Nucleus:
- Composed of protons and neutrons (nucleons), held together by the strong nuclear force

Radioactivity:
- Spontaneous emission of radiation from unstable nuclei
- Alpha (α): Helium nuclei; Beta (β): Electrons or positrons; Gamma (γ): High-energy electromagnetic radiation

Nuclear Reactions:
- Balancing nuclear equations: Total nucleon number and charge must be conserved
- Nuclear fission: Heavy nucleus splits into lighter nuclei
- Nuclear fusion: Light nuclei combine to form heavier nucleus`,
}

func physicsManualText(book int, sel curriculum.Selection, cat *curriculum.Catalog) string {
	sections := physicsBook1Sections
	if book == 2 {
		sections = physicsBook2Sections
	}
	strandName, _ := cat.StrandName(sel.SubjectID, sel.StrandID)
	subStrandName, ok := cat.SubStrandName(sel.StrandID, sel.SubStrandID)
	if !ok {
		subStrandName = "Physics Concepts"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "SHS 1 PHYSICS TEACHER'S MANUAL - BOOK %d\n\n", book)
	fmt.Fprintf(&b, "STRAND: %s\n\n", strandName)
	fmt.Fprintf(&b, "SUB-STRAND: %s\n\n", subStrandName)
	b.WriteString("CONTENT:\n\n")
	b.WriteString(sections[sel.StrandID])
	return b.String()
}

func genericManualText(sel curriculum.Selection) string {
	return fmt.Sprintf(`Teacher manual content for %s %s %s curriculum.
It covers the strand %s and sub-strand %s.

The manual includes detailed lesson plans, teaching strategies, and assessment methods
aligned with the Ghana Standard-Based Curriculum.`,
		sel.ClassLevel, sel.ClassGrade, sel.SubjectID, sel.StrandID, sel.SubStrandID)
}
