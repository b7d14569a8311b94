package seed

import "github.com/phrazzld/dinosaur-api/internal/domain"

var builtinPeriods = []domain.Period{
	{
		ID:          1,
		Name:        "Triassic",
		Description: "Reptiles ruled the world in the Triassic. They gave rise to the first dinosaurs, the first flying reptiles, and the first true mammals, which were little bigger than shrews. Crocodiles and turtles appeared, and the giant aquatic reptiles cruised the ocean.",
		From:        251,
		To:          200,
	},
	{
		ID:          2,
		Name:        "Jurassic",
		Description: "The Jurassic saw the rise of the colossal plant-eating sauropod dinosaurs such as Brachiosaurus, as well as the giant meat-eating theropods that preyed on them. Smaller theropods evolved into the first birds. Deserts shrank and forests of conifer trees, monkey puzzles, and ferns spread across the land.",
		From:        200,
		To:          145,
	},
	{
		ID:          3,
		Name:        "Cretaceous",
		Description: "Dinosaurs of the Cretaceous included Tyrannosaurus and the plant-eating ceratopsians, which had distinctive horned faces, neck frills, and beaks. All dinosaurs except for a few birds perished in a mass extinction at the end of the period, along with many other prehistoric animals.",
		From:        145,
		To:          66,
	},
}

var builtinDiets = []domain.Diet{
	{
		ID:          1,
		Name:        "Herbivore",
		Description: "An animal that eats plants.",
	},
	{
		ID:          2,
		Name:        "Carnivore",
		Description: "An animal that eats meat.",
	},
	{
		ID:          3,
		Name:        "Omnivore",
		Description: "An animal that eats both plant and animal food. Examples include pigs, rats, and human beings.",
	},
	{
		ID:          4,
		Name:        "Unknow",
		Description: "Unknow diet",
	},
}

var builtinLocations = []domain.Location{
	{ID: 1, Name: "United States"},
	{ID: 2, Name: "Canada"},
	{ID: 3, Name: "Portugal"},
	{ID: 4, Name: "Mongolia"},
	{ID: 5, Name: "British Isles"},
	{ID: 6, Name: "Spain"},
	{ID: 7, Name: "Africa"},
}

var builtinTaxonomies = []TaxonomyRecord{
	{
		ID:          1,
		Name:        "Dinosauria",
		Description: "The first dinosaurs were small, agile animals that ran on two legs—they would have looked like the Marasuchus, an early, dinosaurlike archosaur. During the late Triassic Period, early dinosaurs evolved in different ways. Most became specialized for eating plants, but some were to become dedicated hunters.",
		Parent:      0,
	},
	{
		ID:          2,
		Name:        "Saurischia",
		Description: "Saurischian (“lizard hipped”) refers to the typical saurischians that had hip bones like those of lizards. This group included the sauropodomorph plant-eaters. It may also have included the meat-eating theropods, but some scientists think that theropods are more closely related to ornithischians.",
		Parent:      1,
	},
	{
		ID:          3,
		Name:        "Ornithischia",
		Description: "This group is made up of beaked plant-eaters with relatively short necks. The name means “bird hipped,” because their hip bones resembled those of birds (even though birds were small saurischians and so not closely related).",
		Parent:      1,
	},
	{
		ID:          4,
		Name:        "Sauropodomorpha",
		Description: "The sauropodomorphs are named after the sauropods—giant, long-necked plant-eaters that did not have beaks and walked on four legs.",
		Parent:      2,
	},
	{
		ID:          5,
		Name:        "Theropoda",
		Description: "Theropods were nearly all meat-eaters that walked on two legs. Some were huge, powerful hunters, but the theropods also include birds.",
		Parent:      2,
	},
	{
		ID:          6,
		Name:        "Marginocephalia",
		Description: "This group of plant-eaters had heads that sported bony frills. s(Marginocephalian means “fringed head.”) Some walked on two legs, some on four. They were common dinosaurs in the Cretaceous and included the well-known Triceratops.",
		Parent:      3,
	},
	{
		ID:          7,
		Name:        "Ornithopoda",
		Description: "The ornithopods were a group of beaked plant-eaters that mostly walked on two feet, but the biggest ones supported some of their weight on their hands.",
		Parent:      3,
	},
	{
		ID:          8,
		Name:        "Thyreophora",
		Description: "Also called armored dinosaurs, members of this group of plant-eaters were large, walked on four feet, and had armor plates and spikes that protected them from attack. Some of these dinosaurs even had armored eyelids!",
		Parent:      3,
	},
	{
		ID:          9,
		Name:        "Ceratopsia",
		Description: "Most ceratopsians had horned heads and big, bony frills extending from the back of their skulls. They were plant-eaters with hooked, parrotlike beaks.",
		Parent:      6,
	},
	{
		ID:          10,
		Name:        "Pachycephalosauria",
		Description: "These dinosaurs had very thick skulls. They walked on two legs and probably ate a variety of plant and animal food.",
		Parent:      6,
	},
	{
		ID:          11,
		Name:        "Stegosauria",
		Description: "These beaked, plant-eating dinosaurs had rows of tall plates and spikes extending down their backs and tails. They all walked on four legs.",
		Parent:      8,
	},
	{
		ID:          12,
		Name:        "Ankylosauria",
		Description: "Sometimes called tank dinosaurs, these plant-eating heavyweights had thick body armor for defense against large theropod predators.",
		Parent:      8,
	},
}

var builtinDinosaurs = []DinosaurRecord{
	{
		ID:          1,
		Name:        "Tyrannosaurus",
		Description: "As long as a bus and twice the weight of an elephant, Tyrannosaurus was undoubtedly the top predator in its environment. Deep holes in the bones of prey such as Triceratops and Edmontosaurus show that Tyrannosaurus used its immensely powerful jaws and bone-piercing teeth as its main weapons. Small victims were probably shaken apart; larger animals were crippled by horrible injuries. Holding the body down with a foot, Tyrannosaurus used its huge neck muscles to tear off mouthfuls of flesh and bone with its mouth, before swallowing it all.",
		Image:       "1.jpg",
		Size:        "39 ft (12 m)",
		Diet:        2,
		Period:      3,
		Locations:   []int{1, 2},
		Taxonomies:  []int{1, 2, 5},
	},
	{
		ID:          2,
		Name:        "Triceratops",
		Description: "Triceratops’s neck was probably quite flexible, helping it to feed not only on tree leaves but also on low-growing plants. Its powerful parrotlike beak helped it pluck tough forest vegetation, such as palms, ferns, and cycads. Its teeth were like scissors—shredding and snipping the plants.",
		Image:       "2.jpg",
		Size:        "30 ft (9 m)",
		Diet:        1,
		Period:      3,
		Locations:   []int{1, 2},
		Taxonomies:  []int{1, 3, 6, 9},
	},
	{
		ID:          3,
		Name:        "Stegosaurus",
		Description: "Large, diamond-shaped plates ran along the back of this famous dinosaur. Although the plates would have made Stegosaurus look bigger and more fearsome, they were no good as armor. It’s more likely they evolved for use in social or courtship displays. Stegosaurus had a toothless beak made of a hornlike substance. At the back of its mouth were rows of teeth that it used to crush leaves, chewing them to a pulp with simple up-and-down movements.",
		Image:       "3.jpg",
		Size:        "30 ft (9 m)",
		Diet:        1,
		Period:      2,
		Locations:   []int{1, 3},
		Taxonomies:  []int{1, 3, 8, 11},
	},
	{
		ID:          4,
		Name:        "Ankylosaurus",
		Description: "Ankylosaurus was the largest ankylosaur ever. Hundreds of armor plates studded its thick skin, and small armor plates even covered its eyelids. The armor formed from bony plates called osteoderms that grew within the skin, much like the armor plating of a crocodile’s skin. Ankylosaurus was also equipped with a huge tail club that it could swing at attackers with bone-shattering force.",
		Image:       "4.jpg",
		Size:        "20 ft (6 m)",
		Diet:        1,
		Period:      3,
		Locations:   []int{1, 2},
		Taxonomies:  []int{1, 3, 8, 12},
	},
	{
		ID:          5,
		Name:        "Brachiosaurus",
		Description: "One of the largest sauropods, Brachiosaurus weighed an incredible 33–55 tons (30–50 metric tons)—nearly 12 times more than an African elephant. Brachiosaurus’s long neck helped it to feed at heights of more than 50 ft (15 m), which is twice as high as any giraffe can reach.",
		Image:       "5.jpg",
		Size:        "75 ft (23 m)",
		Diet:        1,
		Period:      2,
		Locations:   []int{1},
		Taxonomies:  []int{1, 2, 4},
	},
	{
		ID:          6,
		Name:        "Velociraptor",
		Description: "Velociraptor played a starring role in Jurassic Park, where it was shown as twice its actual size. In reality it was a slender, feathered animal about the size of a wolf. The most spectacular fossil of Velociraptor is a complete skeleton locked in combat with a Protoceratops. Velociraptor had huge, flickable toe claws and long, clawed arms that unfolded like wings to grapple prey. Although no feathered fossils of Velociraptor have been found, its arm bones have quill nodes—small bumps to which long feathers were anchored.",
		Image:       "6.jpg",
		Size:        "61⁄2 ft (2 m)",
		Diet:        2,
		Period:      3,
		Locations:   []int{4},
		Taxonomies:  []int{1, 2, 5},
	},
	{
		ID:          7,
		Name:        "Baryonyx",
		Description: "Remains of partly digested dinosaurs were found in Baryonyx’s fossilized stomach, indicating that it ate land animals as well as fish. It had a very long, low skull, and its jaws had 96 pointed teeth—twice as many as other members of its family. Baryonyx may have had a ridge on its back and a small crest on its snout. Baryonyx means “heavy claw,” referring to its huge, hooklike thumb claws, which it may have used to spear fish, as grizzly bears do today.",
		Image:       "7.jpg",
		Size:        "30 ft (9 m)",
		Diet:        2,
		Period:      3,
		Locations:   []int{3, 5, 6},
		Taxonomies:  []int{1, 2, 5},
	},
	{
		ID:          8,
		Name:        "Suchomimus",
		Description: "Suchomimus, meaning “crocodile mimic,” got its name from its crocodile-like snout and sharp teeth, which it used to catch fish and other slippery prey. Compared to other meat eaters, it had long and powerful arms—perhaps it used them to reach into the water to grasp prey. A bladelike sail ran along its back and perhaps its tail. Suchomimus had more than 100 teeth along its jaw that slanted backward and were pointed like the prongs of a rake. Another set of longer teeth lay clustered at the tip of its snout.",
		Image:       "8.jpg",
		Size:        "30 ft (9 m)",
		Diet:        2,
		Period:      3,
		Locations:   []int{7},
		Taxonomies:  []int{1, 2, 5},
	},
	{
		ID:          9,
		Name:        "Pachycephalosaurus",
		Description: "By comparing Pachycephalosaurus’s few fossils with those of its relatives, scientists figure that this dinosaur was about as long as a station wagon. It probably had a bulky body but the long, slender hind legs of a fast runner. Its small teeth suggest a diet of easily digested plants or, perhaps, a mixture of plants and animal foods such as eggs.",
		Image:       "9.jpg",
		Size:        "15 ft (4.5 m)",
		Diet:        1,
		Period:      3,
		Locations:   []int{1, 2},
		Taxonomies:  []int{1, 3, 6, 10},
	},
	{
		ID:          10,
		Name:        "Parasaurolophus",
		Description: "This creature’s head had a long crest containing hollow tubes. Perhaps Parasaurolophus tooted air out of the crest to make trumpetlike sounds to communicate with herd members. Its heavy, muscular build and wide shoulders may have helped it push through dense undergrowth in woodlands.",
		Image:       "10.jpg",
		Size:        "30 ft (9 m)",
		Diet:        1,
		Period:      3,
		Locations:   []int{1, 2},
		Taxonomies:  []int{1, 3, 7},
	},
	{
		ID:          11,
		Name:        "Edmontosaurus",
		Description: "Edmontosaurus is named after Edmonton town in Alberta, Canada, where the first fossils were found in 1917. One of the largest hadrosaurs, it weighed up to 41⁄2 tons (4 metric tons). Hollow areas around its nostrils may have contained inflatable sacs that Edmontosaurus could expand like balloons and perhaps use to make sounds.",
		Image:       "11.jpg",
		Size:        "43 ft (13 m)",
		Diet:        1,
		Period:      3,
		Locations:   []int{1, 2},
		Taxonomies:  []int{1, 3, 7},
	},
	{
		ID:          12,
		Name:        "Gallimimus",
		Description: "One of the best known of all ornithomimids is Gallimimus (“chicken mimic”). It was the largest ornithomimid, three times as tall as a man and, at 1,000 lb (450 kg) in weight, a lot heavier than any chicken. Gallimimus was the fastest sprinter of any dinosaur and could have outrun a racehorse. It had a birdlike skull, with a brain about the size of a golf ball (only slightly larger than an ostrich’s). Its long, toothless beak was used to pick up leaves, seeds, insects, and small mammals. Gallimimus had wide eye sockets with eyes facing sideways. This helped it spot enemies in almost any direction. Inside each eyeball was a supporting ring of small bony plates. Modern birds still have this feature.",
		Image:       "12.jpg",
		Size:        "20 ft (6 m)",
		Diet:        3,
		Period:      3,
		Locations:   []int{4},
		Taxonomies:  []int{1, 2, 5},
	},
}
